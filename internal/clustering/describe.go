package clustering

import (
	"strings"
	"unicode"

	"github.com/musicmatch/music-match/internal/feature"
)

// Description thresholds: a dimension is high above 0.7, low below 0.3,
// medium in between.
const (
	thresholdHigh = 0.7
	thresholdLow  = 0.3
)

// GenericDescription is the fixed label for a centroid no rule or
// descriptor matched.
const GenericDescription = "Balanced mix - versatile tracks spanning multiple styles"

// descriptionRule pairs a named predicate with its label. Rules are
// evaluated in order and the first match wins, so the order of the
// table is part of the contract.
type descriptionRule struct {
	name    string
	matches func(c feature.Vector) bool
	text    string
}

var descriptionRules = []descriptionRule{
	{
		name: "party",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] > 0.7 && c[feature.Danceability] > 0.7 && c[feature.Valence] > 0.6
		},
		text: "Upbeat party anthems - energetic, danceable, and feel-good tracks",
	},
	{
		name: "intense-dance",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] > 0.7 && c[feature.Danceability] > 0.6 && c[feature.Valence] < 0.4
		},
		text: "Intense electronic - driving beats with darker undertones",
	},
	{
		name: "melancholic-acoustic",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] < 0.4 && c[feature.Acousticness] > 0.6 && c[feature.Valence] < 0.4
		},
		text: "Melancholic acoustic - introspective, stripped-back emotional pieces",
	},
	{
		name: "warm-acoustic",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] < 0.5 && c[feature.Acousticness] > 0.6 && c[feature.Valence] > 0.5
		},
		text: "Warm acoustic - cozy, feel-good unplugged vibes",
	},
	{
		name: "ambient",
		matches: func(c feature.Vector) bool {
			return c[feature.Instrumentalness] > 0.7 && c[feature.Energy] < 0.4
		},
		text: "Ambient soundscapes - atmospheric instrumental journeys",
	},
	{
		name: "instrumental-energy",
		matches: func(c feature.Vector) bool {
			return c[feature.Instrumentalness] > 0.6 && c[feature.Energy] > 0.6
		},
		text: "Instrumental energy - dynamic tracks without vocals",
	},
	{
		name: "rock",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] > 0.7 && c[feature.Danceability] < 0.5 && c[feature.Loudness] > 0.6
		},
		text: "High-octane rock - powerful, intense guitar-driven sound",
	},
	{
		name: "groovy",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] > 0.4 && c[feature.Energy] < 0.7 && c[feature.Danceability] > 0.6
		},
		text: "Groovy mid-tempo - smooth rhythms perfect for casual listening",
	},
	{
		name: "feel-good",
		matches: func(c feature.Vector) bool {
			return c[feature.Valence] > 0.7 && c[feature.Energy] > 0.4 && c[feature.Energy] < 0.7
		},
		text: "Feel-good favorites - positive vibes without being overwhelming",
	},
	{
		name: "moody",
		matches: func(c feature.Vector) bool {
			return c[feature.Valence] < 0.3 && c[feature.Energy] > 0.4 && c[feature.Energy] < 0.7
		},
		text: "Moody and atmospheric - contemplative tracks with depth",
	},
	{
		name: "fast",
		matches: func(c feature.Vector) bool {
			return c[feature.Tempo] > 0.7 && c[feature.Energy] > 0.6
		},
		text: "Fast and furious - high-tempo adrenaline rushers",
	},
	{
		name: "slow",
		matches: func(c feature.Vector) bool {
			return c[feature.Tempo] < 0.4 && c[feature.Energy] < 0.4
		},
		text: "Slow and steady - relaxed tracks for winding down",
	},
}

// Describe maps a centroid to a human-readable phrase. Composite rules
// are tried in order; if none match, individual high/low descriptors
// are concatenated; if nothing qualifies the generic label is returned.
// Total: every centroid produces a non-empty string.
func Describe(c feature.Vector) string {
	for _, rule := range descriptionRules {
		if rule.matches(c) {
			return rule.text
		}
	}

	var descriptors []string

	if c[feature.Energy] > thresholdHigh {
		descriptors = append(descriptors, "high-energy")
	} else if c[feature.Energy] < thresholdLow {
		descriptors = append(descriptors, "chill")
	}

	if c[feature.Danceability] > thresholdHigh {
		descriptors = append(descriptors, "danceable")
	}

	if c[feature.Acousticness] > thresholdHigh {
		descriptors = append(descriptors, "acoustic")
	} else if c[feature.Acousticness] < thresholdLow {
		descriptors = append(descriptors, "electronic")
	}

	if c[feature.Valence] > thresholdHigh {
		descriptors = append(descriptors, "uplifting")
	} else if c[feature.Valence] < thresholdLow {
		descriptors = append(descriptors, "melancholic")
	}

	if c[feature.Instrumentalness] > thresholdHigh {
		descriptors = append(descriptors, "instrumental")
	}

	if len(descriptors) > 0 {
		return capitalize(strings.Join(descriptors, " ")) + " tracks"
	}

	return GenericDescription
}

// emojiRule pairs a named predicate with a mood glyph. First match
// wins, same as the description table.
type emojiRule struct {
	name    string
	matches func(c feature.Vector) bool
	glyph   string
}

var emojiRules = []emojiRule{
	{
		name: "fire",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] > 0.7 && c[feature.Valence] > 0.6
		},
		glyph: "🔥",
	},
	{
		name: "bolt",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] > 0.7 && c[feature.Valence] < 0.4
		},
		glyph: "⚡",
	},
	{
		name: "guitar",
		matches: func(c feature.Vector) bool {
			return c[feature.Acousticness] > 0.7
		},
		glyph: "🎸",
	},
	{
		name: "moon",
		matches: func(c feature.Vector) bool {
			return c[feature.Instrumentalness] > 0.7 && c[feature.Energy] < 0.4
		},
		glyph: "🌙",
	},
	{
		name: "sun",
		matches: func(c feature.Vector) bool {
			return c[feature.Valence] > 0.7
		},
		glyph: "☀️",
	},
	{
		name: "rain",
		matches: func(c feature.Vector) bool {
			return c[feature.Valence] < 0.3
		},
		glyph: "🌧️",
	},
	{
		name: "calm",
		matches: func(c feature.Vector) bool {
			return c[feature.Energy] < 0.3
		},
		glyph: "😌",
	},
}

// MoodEmoji returns a glyph representing the centroid's mood, falling
// back to a generic note.
func MoodEmoji(c feature.Vector) string {
	for _, rule := range emojiRules {
		if rule.matches(c) {
			return rule.glyph
		}
	}
	return "🎵"
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
