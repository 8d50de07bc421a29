package domain

// DurationMatrix holds travel durations in seconds, indexed
// [origin][destination]. It is built once per run and not mutated
// after acquisition.
type DurationMatrix [][]float64

// NewDurationMatrix allocates an m x n matrix of zeros.
func NewDurationMatrix(m, n int) DurationMatrix {
	out := make(DurationMatrix, m)
	for i := range out {
		out[i] = make([]float64, n)
	}
	return out
}

// RankedOption is one scored origin: the weighted-average one-way commute
// time in hours across all key points.
type RankedOption struct {
	Address string
	Hours   float64
}
