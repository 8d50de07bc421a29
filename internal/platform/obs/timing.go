package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

// WithRunID stamps the context with a correlation id shared by every
// log record of one invocation.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// Time logs how long an operation took once the returned func runs.
// Usage: defer obs.Time(ctx, log, "op")(&err)
func Time(ctx context.Context, log zerolog.Logger, name string) func(errp *error) {
	start := time.Now()

	runID := RunID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		ev := log.Info()
		if errp != nil && *errp != nil {
			ev = log.Warn().Err(*errp)
		}
		ev.Str("run_id", runID).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Msg("op done")
	}
}
