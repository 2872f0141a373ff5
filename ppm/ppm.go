// Package ppm reads and writes binary (P6) PPM images, the raster format of
// the blur pipeline.
//
// The reader enforces MaxDimension on both axes so downstream buffers stay
// bounded, and requires a maxval of 255. Files ending in ".gz" are
// transparently (de)compressed.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/shardmath/shardmath/raster"
)

// MaxDimension bounds image width and height at read time.
const MaxDimension = 3000

const maxVal = 255

// ErrFormat indicates a malformed or unsupported PPM file.
var ErrFormat = errors.New("ppm: invalid format")

// ErrDimensionLimit indicates an image exceeding MaxDimension on either
// axis.
type ErrDimensionLimit struct {
	Width  int
	Height int
}

func (e *ErrDimensionLimit) Error() string {
	return fmt.Sprintf("ppm: image %dx%d exceeds maximum dimension %d", e.Width, e.Height, MaxDimension)
}

// Read parses the PPM file at path.
func Read(path string) (*raster.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ppm: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("ppm: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	m, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("ppm: %s: %w", path, err)
	}

	return m, nil
}

// Decode parses a binary P6 stream: magic, width, height, maxval (header
// tokens may be separated by whitespace and '#' comments), then
// width*height*3 raw bytes.
func Decode(r io.Reader) (*raster.Matrix, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: missing magic: %w", ErrFormat, err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: magic %q, want P6", ErrFormat, magic)
	}

	width, err := readIntToken(br, "width")
	if err != nil {
		return nil, err
	}
	height, err := readIntToken(br, "height")
	if err != nil {
		return nil, err
	}
	mv, err := readIntToken(br, "maxval")
	if err != nil {
		return nil, err
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrFormat, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, &ErrDimensionLimit{Width: width, Height: height}
	}
	if mv != maxVal {
		return nil, fmt.Errorf("%w: maxval %d, want %d", ErrFormat, mv, maxVal)
	}

	buf := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, fmt.Errorf("%w: truncated pixel data: %w", ErrFormat, err)
	}

	m := raster.New(width, height)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, float64(buf[i]), float64(buf[i+1]), float64(buf[i+2]))
			i += 3
		}
	}

	return m, nil
}

// Write stores m as a binary P6 file at path. Existing files are truncated.
func Write(path string, m *raster.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}

	if err := Encode(w, m); err != nil {
		f.Close()
		return fmt.Errorf("ppm: write %s: %w", path, err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("ppm: write %s: %w", path, err)
		}
	}

	return f.Close()
}

// Encode writes m as a binary P6 stream. Samples are clamped to [0, 255]
// and rounded to the nearest byte.
func Encode(w io.Writer, m *raster.Matrix) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", m.Width(), m.Height(), maxVal); err != nil {
		return err
	}

	row := make([]byte, m.Width()*3)
	for y := 0; y < m.Height(); y++ {
		i := 0
		for x := 0; x < m.Width(); x++ {
			r, g, b := m.At(x, y)
			row[i] = quantize(r)
			row[i+1] = quantize(g)
			row[i+2] = quantize(b)
			i += 3
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func quantize(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= maxVal {
		return maxVal
	}

	return byte(math.Round(v))
}

func readIntToken(br *bufio.Reader, name string) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, fmt.Errorf("%w: missing %s: %w", ErrFormat, name, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", ErrFormat, name, tok, err)
	}

	return v, nil
}

// readToken returns the next header token, skipping whitespace and '#'
// comments. The single whitespace byte terminating the token is consumed,
// which for the maxval token leaves the reader positioned exactly at the
// first pixel byte.
func readToken(br *bufio.Reader) (string, error) {
	var sb strings.Builder

	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '#' {
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
			continue
		}
		if isSpace(b) {
			continue
		}
		sb.WriteByte(b)
		break
	}

	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			break
		}
		sb.WriteByte(b)
	}

	return sb.String(), nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
