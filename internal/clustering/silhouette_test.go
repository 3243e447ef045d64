package clustering

import (
	"math"
	"testing"

	"github.com/musicmatch/music-match/internal/feature"
)

func TestSilhouetteWellSeparated(t *testing.T) {
	vectors := []feature.Vector{
		{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		{0.15, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		{0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9},
		{0.85, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9},
	}
	assignments := []int{0, 0, 1, 1}

	score := Silhouette(vectors, assignments)
	if score <= 0.8 {
		t.Errorf("Silhouette() = %v, want > 0.8 for tight separated pairs", score)
	}
	if score > 1 {
		t.Errorf("Silhouette() = %v, exceeds upper bound 1", score)
	}
}

func TestSilhouetteBadPartition(t *testing.T) {
	// Two natural groups split the wrong way: each cluster mixes both.
	vectors := []feature.Vector{
		{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		{0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9},
		{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		{0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9},
	}
	assignments := []int{0, 0, 1, 1}

	score := Silhouette(vectors, assignments)
	if score >= 0 {
		t.Errorf("Silhouette() = %v, want < 0 for a mixed partition", score)
	}
	if score < -1 {
		t.Errorf("Silhouette() = %v, below lower bound -1", score)
	}
}

func TestSilhouetteUndefinedCases(t *testing.T) {
	vectors := []feature.Vector{
		{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		{0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9},
	}

	tests := []struct {
		name        string
		vectors     []feature.Vector
		assignments []int
	}{
		{"empty input", nil, nil},
		{"single cluster", vectors, []int{0, 0}},
		{"length mismatch", vectors, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Silhouette(tt.vectors, tt.assignments); got != 0 {
				t.Errorf("Silhouette() = %v, want 0", got)
			}
		})
	}
}

func TestSilhouetteSingletonClusterScoresZero(t *testing.T) {
	vectors := []feature.Vector{
		{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		{0.2, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		{0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9},
	}
	assignments := []int{0, 0, 1}

	// The singleton contributes 0, the pair contributes its own scores.
	score := Silhouette(vectors, assignments)
	a := vectors[0].DistanceTo(vectors[1])
	b0 := vectors[0].DistanceTo(vectors[2])
	b1 := vectors[1].DistanceTo(vectors[2])
	want := ((b0-a)/math.Max(a, b0) + (b1-a)/math.Max(a, b1) + 0) / 3

	if math.Abs(score-want) > 1e-9 {
		t.Errorf("Silhouette() = %v, want %v", score, want)
	}
}
