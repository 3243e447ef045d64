package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/musicmatch/music-match/internal/feature"
)

func sampleVectors() []feature.Vector {
	return []feature.Vector{
		{0.1, 0.2, 0.1, 0.9, 0.3, 0.2, 0.2},
		{0.2, 0.3, 0.2, 0.8, 0.4, 0.3, 0.3},
		{0.8, 0.9, 0.8, 0.1, 0.7, 0.2, 0.8},
		{0.9, 0.8, 0.9, 0.2, 0.8, 0.1, 0.9},
		{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	}
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name    string
		vectors []feature.Vector
	}{
		{"empty input", nil},
		{"single vector", sampleVectors()[:1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.vectors)
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("Fit() error = %v, want %v", err, ErrInsufficientData)
			}
		})
	}
}

func TestTransformDeterminism(t *testing.T) {
	vectors := sampleVectors()

	first, err := Fit(vectors)
	if err != nil {
		t.Fatalf("Fit() error: %v", err)
	}
	second, err := Fit(vectors)
	if err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	a := first.Transform(vectors)
	b := second.Transform(vectors)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs between identical fits: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestTransformPreservesRelativeDistance(t *testing.T) {
	vectors := sampleVectors()
	proj, err := Fit(vectors)
	if err != nil {
		t.Fatalf("Fit() error: %v", err)
	}
	points := proj.Transform(vectors)

	if len(points) != len(vectors) {
		t.Fatalf("got %d points, want %d", len(points), len(vectors))
	}

	// Vectors 0 and 1 are near-identical; 0 and 2 are far apart. The
	// projection keeps the close pair closer than the distant pair.
	near := planarDistance(points[0], points[1])
	far := planarDistance(points[0], points[2])
	if near >= far {
		t.Errorf("projected distances inverted: close pair %v, far pair %v", near, far)
	}
}

func TestTransformSharedBasis(t *testing.T) {
	vectors := sampleVectors()
	proj, err := Fit(vectors)
	if err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	// A vector identical to a fitted one must land on the same point
	// even when transformed as part of a different set.
	reference := proj.Transform(vectors)
	other := proj.Transform([]feature.Vector{vectors[2]})

	if other[0] != reference[2] {
		t.Errorf("same vector landed on different points: %v vs %v", other[0], reference[2])
	}
}

func TestFitFewerVectorsThanDimensions(t *testing.T) {
	// With n < 7 the thin SVD has only n right singular vectors; the
	// fit must still produce a usable two-component basis.
	vectors := []feature.Vector{
		{0.1, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{0.3, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{0.7, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{0.9, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	}

	proj, err := Fit(vectors)
	if err != nil {
		t.Fatalf("Fit() error: %v", err)
	}
	points := proj.Transform(vectors)
	if len(points) != len(vectors) {
		t.Fatalf("got %d points, want %d", len(points), len(vectors))
	}

	// All variance lives in one dimension, so the first axis must carry
	// the spread and the second must collapse to zero.
	for i, p := range points {
		wantMagnitude := math.Abs(vectors[i][0] - 0.5)
		if math.Abs(math.Abs(p.X)-wantMagnitude) > 1e-9 {
			t.Errorf("point %d: |X| = %v, want %v", i, math.Abs(p.X), wantMagnitude)
		}
		if math.Abs(p.Y) > 1e-9 {
			t.Errorf("point %d: Y = %v, want 0", i, p.Y)
		}
	}
}

func TestFitVarianceLandsOnFirstAxis(t *testing.T) {
	// More vectors than dimensions, varying only in acousticness: the
	// first principal axis must align with that dimension.
	var vectors []feature.Vector
	for i := 0; i < 8; i++ {
		v := feature.Vector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
		v[feature.Acousticness] = float64(i) * 0.1
		vectors = append(vectors, v)
	}

	proj, err := Fit(vectors)
	if err != nil {
		t.Fatalf("Fit() error: %v", err)
	}
	points := proj.Transform(vectors)

	mean := 0.35
	for i, p := range points {
		wantMagnitude := math.Abs(vectors[i][feature.Acousticness] - mean)
		if math.Abs(math.Abs(p.X)-wantMagnitude) > 1e-9 {
			t.Errorf("point %d: |X| = %v, want %v", i, math.Abs(p.X), wantMagnitude)
		}
		if math.Abs(p.Y) > 1e-9 {
			t.Errorf("point %d: Y = %v, want 0", i, p.Y)
		}
	}
}

func TestTransformCentersOnMean(t *testing.T) {
	vectors := sampleVectors()
	proj, err := Fit(vectors)
	if err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	mean := feature.Mean(vectors)
	points := proj.Transform([]feature.Vector{mean})
	if math.Abs(points[0].X) > 1e-9 || math.Abs(points[0].Y) > 1e-9 {
		t.Errorf("mean vector projects to %v, want the origin", points[0])
	}
}

func planarDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
