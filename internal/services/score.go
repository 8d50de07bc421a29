package services

import (
	"fmt"

	"github.com/zombiecalypse/KeypointDistance/internal/domain"
)

// InvalidWeightsError reports a weight vector that cannot normalize a
// score: wrong length, negative entries, or a zero sum.
type InvalidWeightsError struct {
	Reason string
}

func (e *InvalidWeightsError) Error() string {
	return "invalid weights: " + e.Reason
}

// Score reduces an m x n duration matrix to one weighted-average commute
// time in hours per origin:
//
//	score(i) = sum_j durations[i][j] * weights[j] / 3600 / sum_j weights[j]
//
// Equal weights reduce to a plain average; zero-weight destinations
// contribute nothing. Pure function of its inputs.
func Score(
	origins []string,
	durations domain.DurationMatrix,
	weights []float64,
) (map[string]float64, error) {
	if len(durations) != len(origins) {
		return nil, fmt.Errorf(
			"score: matrix has %d rows for %d origins", len(durations), len(origins),
		)
	}

	var weightSum float64
	for _, w := range weights {
		if w < 0 {
			return nil, &InvalidWeightsError{
				Reason: fmt.Sprintf("weight %v is negative", w),
			}
		}
		weightSum += w
	}
	if weightSum == 0 {
		return nil, &InvalidWeightsError{Reason: "weight sum is zero"}
	}

	out := make(map[string]float64, len(origins))
	for i, row := range durations {
		if len(row) != len(weights) {
			return nil, &InvalidWeightsError{
				Reason: fmt.Sprintf(
					"got %d weights for %d destinations", len(weights), len(row),
				),
			}
		}

		var weighted float64
		for j, w := range weights {
			weighted += row[j] * w
		}

		out[origins[i]] = weighted / 3600 / weightSum
	}

	return out, nil
}
