package ports

import (
	"context"

	"github.com/zombiecalypse/KeypointDistance/internal/domain"
)

// Contract for retrieving travel durations between locations.
type DurationProvider interface {
	// Return an m x n matrix of travel durations in seconds for every
	// (origin, destination) pair under the given mode.
	Durations(
		ctx context.Context,
		origins []string,
		destinations []string,
		mode domain.TravelMode,
	) (domain.DurationMatrix, error)
}
