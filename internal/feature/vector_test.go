package feature

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFromMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]float64
		want Vector
	}{
		{
			name: "all keys present",
			in: map[string]float64{
				"bpm_normalized":   0.6,
				"energy":           0.8,
				"danceability":     0.7,
				"acousticness":     0.2,
				"valence":          0.9,
				"instrumentalness": 0.1,
				"loudness":         0.5,
			},
			want: Vector{0.6, 0.8, 0.7, 0.2, 0.9, 0.1, 0.5},
		},
		{
			name: "missing keys default to midpoint",
			in:   map[string]float64{"energy": 0.8},
			want: Vector{0.5, 0.8, 0.5, 0.5, 0.5, 0.5, 0.5},
		},
		{
			name: "empty map is all midpoints",
			in:   map[string]float64{},
			want: Vector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		},
		{
			name: "out of range values are clamped",
			in: map[string]float64{
				"energy":  1.7,
				"valence": -0.3,
			},
			want: Vector{0.5, 1.0, 0.5, 0.5, 0.0, 0.5, 0.5},
		},
		{
			name: "unknown keys are ignored",
			in: map[string]float64{
				"energy":      0.4,
				"speechiness": 0.9,
			},
			want: Vector{0.5, 0.4, 0.5, 0.5, 0.5, 0.5, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMap(tt.in)
			if got != tt.want {
				t.Errorf("FromMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToMapRoundTrip(t *testing.T) {
	v := Vector{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	m := v.ToMap()
	if len(m) != Dimensions {
		t.Fatalf("ToMap() has %d keys, want %d", len(m), Dimensions)
	}
	if got := FromMap(m); got != v {
		t.Errorf("FromMap(ToMap()) = %v, want %v", got, v)
	}
}

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{
			name: "identical vectors",
			a:    Vector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
			b:    Vector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
			want: 0,
		},
		{
			name: "single differing dimension",
			a:    Vector{0, 0, 0, 0, 0, 0, 0},
			b:    Vector{0.3, 0, 0, 0, 0, 0, 0},
			want: 0.3,
		},
		{
			name: "opposite corners",
			a:    Vector{0, 0, 0, 0, 0, 0, 0},
			b:    Vector{1, 1, 1, 1, 1, 1, 1},
			want: math.Sqrt(7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.DistanceTo(tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("DistanceTo() = %v, want %v", got, tt.want)
			}
			if rev := tt.b.DistanceTo(tt.a); !almostEqual(got, rev) {
				t.Errorf("distance not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{
			name: "identical nonzero vectors",
			a:    Vector{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
			b:    Vector{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
			want: 1,
		},
		{
			name: "parallel scaled vectors",
			a:    Vector{0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2},
			b:    Vector{0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8},
			want: 1,
		},
		{
			name: "orthogonal vectors",
			a:    Vector{1, 0, 0, 0, 0, 0, 0},
			b:    Vector{0, 1, 0, 0, 0, 0, 0},
			want: 0,
		},
		{
			name: "zero magnitude is zero not error",
			a:    Vector{},
			b:    Vector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
			want: 0,
		},
		{
			name: "both zero",
			a:    Vector{},
			b:    Vector{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cosine(tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	vs := []Vector{
		{0.2, 0.4, 0.6, 0.8, 1.0, 0.0, 0.5},
		{0.4, 0.6, 0.8, 1.0, 0.0, 0.2, 0.5},
	}
	want := Vector{0.3, 0.5, 0.7, 0.9, 0.5, 0.1, 0.5}
	got := Mean(vs)
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("Mean()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if zero := Mean(nil); zero != (Vector{}) {
		t.Errorf("Mean(nil) = %v, want zero vector", zero)
	}
}

func TestNormalizeTempo(t *testing.T) {
	tests := []struct {
		bpm  float64
		want float64
	}{
		{0, 0},
		{100, 0.5},
		{200, 1.0},
		{240, 1.0}, // clamped at ceiling
	}
	for _, tt := range tests {
		if got := NormalizeTempo(tt.bpm); !almostEqual(got, tt.want) {
			t.Errorf("NormalizeTempo(%v) = %v, want %v", tt.bpm, got, tt.want)
		}
	}
}

func TestNormalizeLoudness(t *testing.T) {
	tests := []struct {
		db   float64
		want float64
	}{
		{-60, 0},
		{-30, 0.5},
		{0, 1.0},
		{-80, 0}, // clamped at floor
		{5, 1.0}, // clamped at ceiling
	}
	for _, tt := range tests {
		if got := NormalizeLoudness(tt.db); !almostEqual(got, tt.want) {
			t.Errorf("NormalizeLoudness(%v) = %v, want %v", tt.db, got, tt.want)
		}
	}
}
