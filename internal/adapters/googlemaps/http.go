package googlemaps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/zombiecalypse/KeypointDistance/internal/platform/obs"
	"github.com/zombiecalypse/KeypointDistance/internal/platform/retry"
	"github.com/zombiecalypse/KeypointDistance/internal/ports"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// getJSON issues one GET against the provider and returns the raw body.
// Failures are wrapped as TransportError; retries happen in the caller.
func (g *Provider) getJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if g.apiKey != "" {
		query.Set("key", g.apiKey)
	}

	endpoint := g.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	g.log.Info().Str("run_id", obs.RunID(ctx)).Msgf("GET %s", endpoint)

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, &ports.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ports.TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return nil, &ports.TransportError{Err: &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}}
	}

	return body, nil
}

// withRetry runs op under the provider's retry policy, logging one
// warning per retried failure.
func (g *Provider) withRetry(ctx context.Context, op func() error) error {
	pol := g.retry
	pol.OnRetry = func(attempt int, err error) {
		g.log.Warn().
			Str("run_id", obs.RunID(ctx)).
			Int("attempt", attempt+1).
			Int("max_attempts", maxAttempts(pol)).
			Err(err).
			Msg("request failed, retrying")
	}
	return pol.Do(ctx, op)
}

func maxAttempts(p retry.Policy) int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}
