package raster

// Matrix is a W×H grid of three-channel pixel samples. The zero value is an
// empty matrix; use New to allocate backing storage.
//
// Methods do not bounds-check beyond Go's slice checks; callers index with
// 0 <= x < Width(), 0 <= y < Height(). Dimension limits are enforced where
// images enter the system (the ppm reader), not here.
type Matrix struct {
	width  int
	height int
	r      []float64
	g      []float64
	b      []float64
}

// New allocates a zeroed matrix. Non-positive dimensions yield an empty
// matrix.
func New(width, height int) *Matrix {
	if width <= 0 || height <= 0 {
		return &Matrix{}
	}

	n := width * height
	return &Matrix{
		width:  width,
		height: height,
		r:      make([]float64, n),
		g:      make([]float64, n),
		b:      make([]float64, n),
	}
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// At returns the three channel samples at (x, y).
func (m *Matrix) At(x, y int) (r, g, b float64) {
	i := y*m.width + x
	return m.r[i], m.g[i], m.b[i]
}

// Set writes the three channel samples at (x, y).
func (m *Matrix) Set(x, y int, r, g, b float64) {
	i := y*m.width + x
	m.r[i] = r
	m.g[i] = g
	m.b[i] = b
}

// Clone returns a deep copy sharing no storage with m.
func (m *Matrix) Clone() *Matrix {
	out := New(m.width, m.height)
	copy(out.r, m.r)
	copy(out.g, m.g)
	copy(out.b, m.b)

	return out
}

// Fill sets every pixel to the given channel samples.
func (m *Matrix) Fill(r, g, b float64) {
	for i := range m.r {
		m.r[i] = r
		m.g[i] = g
		m.b[i] = b
	}
}

// Equal reports whether two matrices have identical shape and samples.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.r {
		if m.r[i] != o.r[i] || m.g[i] != o.g[i] || m.b[i] != o.b[i] {
			return false
		}
	}

	return true
}
