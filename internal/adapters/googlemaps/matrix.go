package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/zombiecalypse/KeypointDistance/internal/domain"
	"github.com/zombiecalypse/KeypointDistance/internal/ports"
)

const matrixPath = "/maps/api/distancematrix/json"

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration *struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// fetchMatrix retrieves all origin x destination durations with a single
// batched request. Each attempt fetches and parses the full response, so
// malformed payloads are retried like transport failures.
func (g *Provider) fetchMatrix(
	ctx context.Context,
	origins []string,
	destinations []string,
	mode domain.TravelMode,
) (domain.DurationMatrix, error) {
	query := url.Values{}
	query.Set("origins", strings.Join(origins, "|"))
	query.Set("destinations", strings.Join(destinations, "|"))
	query.Set("mode", mode.RequestValue())
	query.Set("departure_time", strconv.FormatInt(g.departure().Unix(), 10))
	query.Set("sensor", "false")

	var out domain.DurationMatrix

	err := g.withRetry(ctx, func() error {
		body, err := g.getJSON(ctx, matrixPath, query)
		if err != nil {
			return err
		}

		matrix, err := parseMatrixResponse(body, len(origins), len(destinations))
		if err != nil {
			return err
		}

		out = matrix
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request failed: %w", err)
	}

	return out, nil
}

func parseMatrixResponse(body []byte, m, n int) (domain.DurationMatrix, error) {
	var mr matrixResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return nil, &ports.DataFormatError{
			Reason: fmt.Sprintf("decode matrix response: %v", err),
			Raw:    body,
		}
	}

	if mr.Status != "" && mr.Status != "OK" {
		return nil, &ports.DataFormatError{
			Reason: fmt.Sprintf("matrix status %q", mr.Status),
			Raw:    body,
		}
	}

	if len(mr.Rows) != m {
		return nil, &ports.DataFormatError{
			Reason: fmt.Sprintf("expected %d rows, got %d", m, len(mr.Rows)),
			Raw:    body,
		}
	}

	out := domain.NewDurationMatrix(m, n)
	for i, row := range mr.Rows {
		if len(row.Elements) != n {
			return nil, &ports.DataFormatError{
				Reason: fmt.Sprintf("row %d: expected %d elements, got %d", i, n, len(row.Elements)),
				Raw:    body,
			}
		}

		for j, el := range row.Elements {
			if el.Status != "" && el.Status != "OK" {
				return nil, &ports.DataFormatError{
					Reason: fmt.Sprintf("element [%d][%d] status %q", i, j, el.Status),
					Raw:    body,
				}
			}
			if el.Duration == nil {
				return nil, &ports.DataFormatError{
					Reason: fmt.Sprintf("element [%d][%d] has no duration", i, j),
					Raw:    body,
				}
			}
			out[i][j] = el.Duration.Value
		}
	}

	return out, nil
}
