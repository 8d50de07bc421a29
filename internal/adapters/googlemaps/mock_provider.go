package googlemaps

import (
	"context"
	"fmt"

	"github.com/zombiecalypse/KeypointDistance/internal/domain"
)

// MockProvider serves a fixed duration matrix for tests of the scoring
// pipeline. It records how often it was called.
type MockProvider struct {
	Matrix domain.DurationMatrix
	Err    error
	Calls  int
}

func (m *MockProvider) Durations(
	ctx context.Context,
	origins []string,
	destinations []string,
	mode domain.TravelMode,
) (domain.DurationMatrix, error) {
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}

	if len(m.Matrix) != len(origins) {
		return nil, fmt.Errorf(
			"mock matrix has %d rows, want %d", len(m.Matrix), len(origins),
		)
	}
	for i, row := range m.Matrix {
		if len(row) != len(destinations) {
			return nil, fmt.Errorf(
				"mock matrix row %d has %d columns, want %d",
				i, len(row), len(destinations),
			)
		}
	}

	return m.Matrix, nil
}
