package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/zombiecalypse/KeypointDistance/internal/domain"
	"github.com/zombiecalypse/KeypointDistance/internal/ports"
)

type RankRequest struct {
	Options   []string
	Keypoints []domain.KeyPoint
	Mode      domain.TravelMode
}

// Rank fetches the duration matrix for all options against all key
// points, scores every option, and returns them sorted ascending by
// score (ties break on address for deterministic output).
func Rank(
	ctx context.Context,
	req RankRequest,
	provider ports.DurationProvider,
) ([]domain.RankedOption, error) {
	if len(req.Options) == 0 {
		return nil, fmt.Errorf("rank: no options to score")
	}
	if len(req.Keypoints) == 0 {
		return nil, fmt.Errorf("rank: no keypoints to score against")
	}

	durations, err := provider.Durations(
		ctx, req.Options, domain.Addresses(req.Keypoints), req.Mode,
	)
	if err != nil {
		return nil, fmt.Errorf("rank: get durations: %w", err)
	}

	scores, err := Score(req.Options, durations, domain.Weights(req.Keypoints))
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}

	out := make([]domain.RankedOption, 0, len(scores))
	for addr, hours := range scores {
		out = append(out, domain.RankedOption{Address: addr, Hours: hours})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours < out[j].Hours
		}
		return out[i].Address < out[j].Address
	})

	return out, nil
}
