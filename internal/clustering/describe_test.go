package clustering

import (
	"testing"

	"github.com/musicmatch/music-match/internal/feature"
)

// centroid builds a vector from wire-name values, leaving the rest at
// the midpoint.
func centroid(values map[string]float64) feature.Vector {
	m := make(map[string]float64, feature.Dimensions)
	for _, key := range feature.Keys {
		m[key] = 0.5
	}
	for key, val := range values {
		m[key] = val
	}
	return feature.FromMap(m)
}

func TestDescribeCompositeRules(t *testing.T) {
	tests := []struct {
		name string
		c    feature.Vector
		want string
	}{
		{
			name: "party",
			c:    centroid(map[string]float64{"energy": 0.8, "danceability": 0.8, "valence": 0.7}),
			want: "Upbeat party anthems - energetic, danceable, and feel-good tracks",
		},
		{
			name: "intense dance",
			c:    centroid(map[string]float64{"energy": 0.8, "danceability": 0.7, "valence": 0.3}),
			want: "Intense electronic - driving beats with darker undertones",
		},
		{
			name: "melancholic acoustic",
			c:    centroid(map[string]float64{"energy": 0.3, "acousticness": 0.7, "valence": 0.3}),
			want: "Melancholic acoustic - introspective, stripped-back emotional pieces",
		},
		{
			name: "warm acoustic",
			c:    centroid(map[string]float64{"energy": 0.4, "acousticness": 0.7, "valence": 0.6}),
			want: "Warm acoustic - cozy, feel-good unplugged vibes",
		},
		{
			name: "ambient",
			c:    centroid(map[string]float64{"instrumentalness": 0.8, "energy": 0.3}),
			want: "Ambient soundscapes - atmospheric instrumental journeys",
		},
		{
			name: "instrumental energy",
			c:    centroid(map[string]float64{"instrumentalness": 0.7, "energy": 0.7}),
			want: "Instrumental energy - dynamic tracks without vocals",
		},
		{
			name: "rock",
			c:    centroid(map[string]float64{"energy": 0.8, "danceability": 0.4, "loudness": 0.7}),
			want: "High-octane rock - powerful, intense guitar-driven sound",
		},
		{
			name: "groovy",
			c:    centroid(map[string]float64{"energy": 0.5, "danceability": 0.7}),
			want: "Groovy mid-tempo - smooth rhythms perfect for casual listening",
		},
		{
			name: "feel good",
			c:    centroid(map[string]float64{"valence": 0.8, "energy": 0.5, "danceability": 0.5}),
			want: "Feel-good favorites - positive vibes without being overwhelming",
		},
		{
			name: "moody",
			c:    centroid(map[string]float64{"valence": 0.2, "energy": 0.5}),
			want: "Moody and atmospheric - contemplative tracks with depth",
		},
		{
			name: "fast",
			c:    centroid(map[string]float64{"bpm_normalized": 0.8, "energy": 0.65, "danceability": 0.5}),
			want: "Fast and furious - high-tempo adrenaline rushers",
		},
		{
			name: "slow",
			c:    centroid(map[string]float64{"bpm_normalized": 0.3, "energy": 0.35, "danceability": 0.4}),
			want: "Slow and steady - relaxed tracks for winding down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.c); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeRuleOrder(t *testing.T) {
	// Matches both party (first) and fast (later); the first rule wins.
	c := centroid(map[string]float64{
		"bpm_normalized": 0.8,
		"energy":         0.8,
		"danceability":   0.8,
		"valence":        0.7,
	})
	want := "Upbeat party anthems - energetic, danceable, and feel-good tracks"
	if got := Describe(c); got != want {
		t.Errorf("Describe() = %q, want first matching rule %q", got, want)
	}
}

func TestDescribeDescriptorFallback(t *testing.T) {
	tests := []struct {
		name string
		c    feature.Vector
		want string
	}{
		{
			name: "single descriptor",
			c:    centroid(map[string]float64{"acousticness": 0.8, "energy": 0.55, "danceability": 0.55}),
			want: "Acoustic tracks",
		},
		{
			name: "multiple descriptors",
			c:    centroid(map[string]float64{"acousticness": 0.2, "valence": 0.75, "energy": 0.72, "danceability": 0.3, "bpm_normalized": 0.5}),
			want: "High-energy electronic uplifting tracks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.c); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeGenericFallback(t *testing.T) {
	c := centroid(nil) // everything at the midpoint
	if got := Describe(c); got != GenericDescription {
		t.Errorf("Describe() = %q, want %q", got, GenericDescription)
	}
}

func TestMoodEmoji(t *testing.T) {
	tests := []struct {
		name string
		c    feature.Vector
		want string
	}{
		{"fire", centroid(map[string]float64{"energy": 0.8, "valence": 0.7}), "🔥"},
		{"bolt", centroid(map[string]float64{"energy": 0.8, "valence": 0.3}), "⚡"},
		{"guitar", centroid(map[string]float64{"acousticness": 0.8}), "🎸"},
		{"moon", centroid(map[string]float64{"instrumentalness": 0.8, "energy": 0.3}), "🌙"},
		{"sun", centroid(map[string]float64{"valence": 0.8}), "☀️"},
		{"rain", centroid(map[string]float64{"valence": 0.2}), "🌧️"},
		{"calm", centroid(map[string]float64{"energy": 0.2}), "😌"},
		{"fallback", centroid(nil), "🎵"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodEmoji(tt.c); got != tt.want {
				t.Errorf("MoodEmoji() = %q, want %q", got, tt.want)
			}
		})
	}
}
