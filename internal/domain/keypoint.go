package domain

// KeyPoint is a location of importance together with its relative weight.
// Weights are nonnegative and need not sum to one; normalization happens
// at scoring time.
type KeyPoint struct {
	Weight  float64
	Address string
}

// Addresses returns the key point addresses in order.
func Addresses(keypoints []KeyPoint) []string {
	out := make([]string, 0, len(keypoints))
	for _, k := range keypoints {
		out = append(out, k.Address)
	}
	return out
}

// Weights returns the key point weights in order.
func Weights(keypoints []KeyPoint) []float64 {
	out := make([]float64, 0, len(keypoints))
	for _, k := range keypoints {
		out = append(out, k.Weight)
	}
	return out
}
