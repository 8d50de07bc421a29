package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/zombiecalypse/KeypointDistance/internal/domain"
	"github.com/zombiecalypse/KeypointDistance/internal/ports"
)

const directionsPath = "/maps/api/directions/json"

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration *struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// fetchPairwise retrieves durations one (origin, destination) pair at a
// time, m x n requests in total, issued strictly sequentially. The matrix
// endpoint does not support transit, so this slower protocol is the
// fallback for that mode. Retry applies to each request independently.
func (g *Provider) fetchPairwise(
	ctx context.Context,
	origins []string,
	destinations []string,
	mode domain.TravelMode,
) (domain.DurationMatrix, error) {
	out := domain.NewDurationMatrix(len(origins), len(destinations))

	for i, origin := range origins {
		for j, destination := range destinations {
			seconds, err := g.fetchRouteDuration(ctx, origin, destination, mode)
			if err != nil {
				return nil, fmt.Errorf(
					"route duration %q -> %q: %w",
					origin, destination, err,
				)
			}
			out[i][j] = seconds
		}
	}

	return out, nil
}

func (g *Provider) fetchRouteDuration(
	ctx context.Context,
	origin string,
	destination string,
	mode domain.TravelMode,
) (float64, error) {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)
	query.Set("mode", mode.RequestValue())
	query.Set("departure_time", strconv.FormatInt(g.departure().Unix(), 10))

	var seconds float64

	err := g.withRetry(ctx, func() error {
		body, err := g.getJSON(ctx, directionsPath, query)
		if err != nil {
			return err
		}

		s, err := parseDirectionsResponse(body)
		if err != nil {
			return err
		}

		seconds = s
		return nil
	})
	if err != nil {
		return 0, err
	}

	return seconds, nil
}

func parseDirectionsResponse(body []byte) (float64, error) {
	var dr directionsResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return 0, &ports.DataFormatError{
			Reason: fmt.Sprintf("decode directions response: %v", err),
			Raw:    body,
		}
	}

	if dr.Status != "" && dr.Status != "OK" {
		return 0, &ports.DataFormatError{
			Reason: fmt.Sprintf("directions status %q", dr.Status),
			Raw:    body,
		}
	}

	if len(dr.Routes) == 0 {
		return 0, &ports.DataFormatError{Reason: "no routes returned", Raw: body}
	}

	legs := dr.Routes[0].Legs
	if len(legs) == 0 {
		return 0, &ports.DataFormatError{Reason: "route has no legs", Raw: body}
	}

	var total float64
	for i, leg := range legs {
		if leg.Duration == nil {
			return 0, &ports.DataFormatError{
				Reason: fmt.Sprintf("leg %d has no duration", i),
				Raw:    body,
			}
		}
		total += leg.Duration.Value
	}

	return total, nil
}
