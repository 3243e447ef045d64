package feature

import (
	"context"
	"testing"
)

func TestSyntheticSourceDeterminism(t *testing.T) {
	ids := []string{"a", "b", "c"}

	first, err := NewSyntheticSource(7).Features(context.Background(), ids)
	if err != nil {
		t.Fatalf("Features() error: %v", err)
	}
	second, err := NewSyntheticSource(7).Features(context.Background(), ids)
	if err != nil {
		t.Fatalf("Features() error: %v", err)
	}

	if len(first) != len(ids) {
		t.Fatalf("got %d feature sets, want %d", len(first), len(ids))
	}
	for _, id := range ids {
		if first[id] != second[id] {
			t.Errorf("same seed produced different features for %q: %+v vs %+v",
				id, first[id], second[id])
		}
	}
}

func TestSyntheticSourceVectorInRange(t *testing.T) {
	src := NewSyntheticSource(1)
	for i := 0; i < 100; i++ {
		v := src.Generate().Vector()
		for dim, val := range v {
			if val < 0 || val > 1 {
				t.Fatalf("dimension %d out of range: %v", dim, val)
			}
		}
	}
}

func TestGenerateNearStaysCloseToProfile(t *testing.T) {
	profile := Vector{0.8, 0.9, 0.8, 0.1, 0.7, 0.2, 0.7}
	src := NewSyntheticSource(3)

	for i := 0; i < 50; i++ {
		v := src.GenerateNear(profile, 0.1).Vector()
		for dim := range v {
			diff := v[dim] - profile[dim]
			if diff < -0.11 || diff > 0.11 {
				t.Fatalf("dimension %d drifted %v from profile, jitter is 0.1", dim, diff)
			}
		}
	}
}

func TestRawFeaturesVector(t *testing.T) {
	raw := RawFeatures{
		BPM:              120,
		Energy:           0.8,
		Danceability:     0.7,
		Acousticness:     0.2,
		Valence:          0.6,
		Instrumentalness: 0.1,
		LoudnessDB:       -6,
	}
	v := raw.Vector()

	if !almostEqual(v[Tempo], 0.6) {
		t.Errorf("Tempo = %v, want 0.6", v[Tempo])
	}
	if !almostEqual(v[Loudness], 0.9) {
		t.Errorf("Loudness = %v, want 0.9", v[Loudness])
	}
	if !almostEqual(v[Energy], 0.8) {
		t.Errorf("Energy = %v, want 0.8", v[Energy])
	}
}
