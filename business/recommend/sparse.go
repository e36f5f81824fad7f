package recommend

import "math"

// Vector is a sparse row: parallel, column-sorted indices and values.
type Vector struct {
	Indices []int
	Values  []float64
}

// Matrix holds one L2-normalised sparse row per catalog movie, in catalog order.
type Matrix struct {
	Rows []Vector
	Cols int
}

func (m *Matrix) Len() int {
	return len(m.Rows)
}

func dotSparse(a, b Vector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

func norm(v Vector) float64 {
	sum := 0.0
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// CosineRow scores row against every row of m. Empty rows score 0 and
// results are clamped to [0,1].
func (m *Matrix) CosineRow(row int) []float64 {
	out := make([]float64, len(m.Rows))
	src := m.Rows[row]
	srcNorm := norm(src)
	if srcNorm == 0 {
		return out
	}

	for i, r := range m.Rows {
		n := norm(r)
		if n == 0 {
			continue
		}
		out[i] = clamp01(dotSparse(src, r) / (srcNorm * n))
	}

	return out
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
