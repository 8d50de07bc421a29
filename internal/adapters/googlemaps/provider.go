// Package googlemaps implements the DurationProvider port against the
// Google Maps HTTP JSON API.
package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zombiecalypse/KeypointDistance/internal/domain"
	"github.com/zombiecalypse/KeypointDistance/internal/platform/obs"
	"github.com/zombiecalypse/KeypointDistance/internal/platform/retry"
)

const defaultBaseURL = "https://maps.googleapis.com"

// Provider implements DurationProvider using the Google Maps API.
//
// It coordinates:
//   - One batched distance-matrix request for driving, bicycle and walking
//   - One directions request per pair for transit (the matrix endpoint
//     does not support transit)
//   - External API calls with bounded retry and full-jitter backoff
type Provider struct {
	session   *http.Client
	apiKey    string
	baseURL   string
	retry     retry.Policy
	departure func() time.Time
	log       zerolog.Logger
}

type Config struct {
	// APIKey may be empty; requests are then sent unauthenticated.
	APIKey string
	// BaseURL overrides the Google endpoint, mainly for tests.
	BaseURL string
	// Timeout bounds each outbound request. Defaults to 10s.
	Timeout time.Duration
	// Retry bounds transient-failure retries. Zero value means the
	// default policy (3 attempts, 200ms base delay).
	Retry retry.Policy
}

func New(cfg Config, log zerolog.Logger) *Provider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	pol := cfg.Retry
	if pol.MaxAttempts == 0 && pol.BaseDelay == 0 {
		pol = retry.Default()
	}

	return &Provider{
		session:   &http.Client{Timeout: timeout},
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		retry:     pol,
		departure: time.Now,
		log:       log,
	}
}

// Durations returns the m x n travel-duration matrix for the given mode.
// Transit uses the pairwise strategy; every other mode uses one batched
// matrix request. Any request that still fails after the retry budget
// aborts the whole matrix; there is no partial result.
func (g *Provider) Durations(
	ctx context.Context,
	origins []string,
	destinations []string,
	mode domain.TravelMode,
) (_ domain.DurationMatrix, err error) {
	defer obs.Time(ctx, g.log, "googlemaps.Durations")(&err)

	if len(origins) == 0 {
		return nil, fmt.Errorf("get durations: origins must be non-empty")
	}
	if len(destinations) == 0 {
		return nil, fmt.Errorf("get durations: destinations must be non-empty")
	}
	for _, o := range origins {
		if strings.TrimSpace(o) == "" {
			return nil, fmt.Errorf("get durations: empty origin address")
		}
	}
	for _, d := range destinations {
		if strings.TrimSpace(d) == "" {
			return nil, fmt.Errorf("get durations: empty destination address")
		}
	}
	if _, err := domain.ParseTravelMode(string(mode)); err != nil {
		return nil, fmt.Errorf("get durations: %w", err)
	}

	if mode == domain.ModeTransit {
		return g.fetchPairwise(ctx, origins, destinations, mode)
	}
	return g.fetchMatrix(ctx, origins, destinations, mode)
}
