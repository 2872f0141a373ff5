// Package dataset reads and writes the textual formats of the correlation
// pipeline: an input file of whitespace-separated numeric rows (one vector
// per line) and an output file of one coefficient per line.
//
// Files ending in ".gz" are transparently (de)compressed.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/shardmath/shardmath/vector"
)

// maxLineBytes bounds a single input row; 16MB covers very wide vectors
// without letting a malformed file exhaust memory.
const maxLineBytes = 16 << 20

// Read parses the file at path into a vector batch.
func Read(path string) (vector.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	b, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return b, nil
}

// Decode parses whitespace-separated float64 rows from r. Blank lines are
// skipped; all rows must have the same number of columns.
func Decode(r io.Reader) (vector.Batch, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var vs []vector.Vector
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		v := make(vector.Vector, len(fields))
		for i, field := range fields {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			v[i] = x
		}
		vs = append(vs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return vector.NewBatch(vs...)
}

// Write stores one coefficient per line at path. Existing files are
// truncated.
func Write(path string, coeffs []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}

	if err := Encode(w, coeffs); err != nil {
		f.Close()
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("dataset: write %s: %w", path, err)
		}
	}

	return f.Close()
}

// Encode writes one coefficient per line to w, in the shortest decimal form
// that round-trips.
func Encode(w io.Writer, coeffs []float64) error {
	bw := bufio.NewWriter(w)
	for _, c := range coeffs {
		if _, err := bw.WriteString(strconv.FormatFloat(c, 'g', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
