package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/zombiecalypse/KeypointDistance/internal/adapters/googlemaps"
	"github.com/zombiecalypse/KeypointDistance/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreEqualWeightsIsPlainAverage(t *testing.T) {
	origins := []string{"A", "B"}
	durations := domain.DurationMatrix{
		{3600, 7200, 1800},
		{900, 900, 900},
	}

	scores, err := Score(origins, durations, []float64{2, 2, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(scores["A"], (3600+7200+1800)/3.0/3600) {
		t.Fatalf("score A = %v, want mean of row / 3600", scores["A"])
	}
	if !almostEqual(scores["B"], 0.25) {
		t.Fatalf("score B = %v, want 0.25", scores["B"])
	}
}

func TestScoreSingleNonzeroWeightSelectsColumn(t *testing.T) {
	origins := []string{"A", "B"}
	durations := domain.DurationMatrix{
		{3600, 1234},
		{7200, 5678},
	}

	scores, err := Score(origins, durations, []float64{0, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(scores["A"], 1234.0/3600) {
		t.Fatalf("score A = %v, want %v", scores["A"], 1234.0/3600)
	}
	if !almostEqual(scores["B"], 5678.0/3600) {
		t.Fatalf("score B = %v, want %v", scores["B"], 5678.0/3600)
	}
}

func TestScoreNonnegative(t *testing.T) {
	origins := []string{"A", "B", "C"}
	durations := domain.DurationMatrix{
		{0, 10},
		{42, 0},
		{1, 1},
	}

	scores, err := Score(origins, durations, []float64{1, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for addr, s := range scores {
		if s < 0 {
			t.Errorf("score %q = %v, want >= 0", addr, s)
		}
	}
}

func TestScoreWrongWeightLength(t *testing.T) {
	durations := domain.DurationMatrix{{1, 2, 3}}

	_, err := Score([]string{"A"}, durations, []float64{1, 2})

	var iwe *InvalidWeightsError
	if !errors.As(err, &iwe) {
		t.Fatalf("expected InvalidWeightsError, got %v", err)
	}
}

func TestScoreZeroWeightSum(t *testing.T) {
	durations := domain.DurationMatrix{{1, 2}}

	_, err := Score([]string{"A"}, durations, []float64{0, 0})

	var iwe *InvalidWeightsError
	if !errors.As(err, &iwe) {
		t.Fatalf("expected InvalidWeightsError, got %v", err)
	}
}

func TestScoreNegativeWeight(t *testing.T) {
	durations := domain.DurationMatrix{{1, 2}}

	_, err := Score([]string{"A"}, durations, []float64{1, -1})

	var iwe *InvalidWeightsError
	if !errors.As(err, &iwe) {
		t.Fatalf("expected InvalidWeightsError, got %v", err)
	}
}

func TestRankSortsAscendingByScore(t *testing.T) {
	provider := &googlemaps.MockProvider{
		Matrix: domain.DurationMatrix{
			{3600, 1800},
			{7200, 900},
		},
	}

	req := RankRequest{
		Options: []string{"123 Main St", "456 Oak Ave"},
		Keypoints: []domain.KeyPoint{
			{Weight: 2.0, Address: "Work HQ"},
			{Weight: 1.0, Address: "Gym"},
		},
		Mode: domain.ModeDriving,
	}

	ranked, err := Rank(context.Background(), req, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.Calls != 1 {
		t.Fatalf("provider called %d times, want 1", provider.Calls)
	}

	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked options, got %d", len(ranked))
	}
	if ranked[0].Address != "123 Main St" {
		t.Fatalf("expected 123 Main St first, got %q", ranked[0].Address)
	}
	// (3600*2 + 1800*1) / 3600 / (2+1)
	if !almostEqual(ranked[0].Hours, 2.5/3) {
		t.Fatalf("score = %v, want %v", ranked[0].Hours, 2.5/3)
	}
	if ranked[1].Address != "456 Oak Ave" {
		t.Fatalf("expected 456 Oak Ave second, got %q", ranked[1].Address)
	}
	// (7200*2 + 900*1) / 3600 / (2+1)
	if !almostEqual(ranked[1].Hours, 4.25/3) {
		t.Fatalf("score = %v, want %v", ranked[1].Hours, 4.25/3)
	}
}

func TestRankPropagatesProviderError(t *testing.T) {
	provider := &googlemaps.MockProvider{Err: errors.New("boom")}

	req := RankRequest{
		Options:   []string{"A"},
		Keypoints: []domain.KeyPoint{{Weight: 1, Address: "B"}},
		Mode:      domain.ModeDriving,
	}

	if _, err := Rank(context.Background(), req, provider); err == nil {
		t.Fatal("expected error, got nil")
	}
}
