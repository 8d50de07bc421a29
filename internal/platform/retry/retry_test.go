package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	pol := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	var retried []int
	pol.OnRetry = func(attempt int, err error) {
		retried = append(retried, attempt)
	}

	calls := 0
	err := pol.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 3 {
		t.Fatalf("op called %d times, want 3", calls)
	}
	if len(retried) != 2 || retried[0] != 0 || retried[1] != 1 {
		t.Fatalf("OnRetry attempts = %v, want [0 1]", retried)
	}
}

func TestDoReturnsLastErrorAfterExhaustion(t *testing.T) {
	pol := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	last := errors.New("third failure")
	calls := 0
	err := pol.Do(context.Background(), func() error {
		calls++
		if calls == 3 {
			return last
		}
		return errors.New("earlier failure")
	})

	if calls != 3 {
		t.Fatalf("op called %d times, want 3", calls)
	}
	if !errors.Is(err, last) {
		t.Fatalf("err = %v, want the last failure", err)
	}
}

func TestDoSingleAttemptByDefaultZeroValue(t *testing.T) {
	var pol Policy

	calls := 0
	err := pol.Do(context.Background(), func() error {
		calls++
		return errors.New("fail")
	})

	if calls != 1 {
		t.Fatalf("op called %d times, want 1", calls)
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestDoStopsOnCancelledContext(t *testing.T) {
	pol := Policy{MaxAttempts: 5, BaseDelay: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- pol.Do(ctx, func() error {
			calls++
			return errors.New("fail")
		})
	}()

	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}
