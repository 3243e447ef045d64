// Package feature defines the canonical audio feature vector used for
// all distance and similarity comparisons.
package feature

import "math"

// Dimensions is the number of feature dimensions in a Vector.
const Dimensions = 7

// Midpoint is the default value for a dimension no input touched.
// Defaulting to the middle of the scale avoids biasing distance
// calculations toward the origin.
const Midpoint = 0.5

// Dimension indices, in canonical order. Every Vector compared to
// another must use this order.
const (
	Tempo = iota // bpm_normalized
	Energy
	Danceability
	Acousticness
	Valence
	Instrumentalness
	Loudness
)

// Keys lists the wire names of the feature dimensions in canonical order.
var Keys = []string{
	"bpm_normalized",
	"energy",
	"danceability",
	"acousticness",
	"valence",
	"instrumentalness",
	"loudness",
}

// DisplayNames maps wire names to human-readable labels for chart output.
var DisplayNames = map[string]string{
	"bpm_normalized":   "Tempo",
	"energy":           "Energy",
	"danceability":     "Danceability",
	"acousticness":     "Acoustic",
	"valence":          "Positivity",
	"instrumentalness": "Instrumental",
	"loudness":         "Loudness",
}

// Vector is a fixed-order tuple of normalized audio dimensions.
// All components are in [0,1].
type Vector [Dimensions]float64

// FromMap builds a Vector from a wire mapping. Missing keys default to
// Midpoint, unknown keys are ignored, and all values are clamped to [0,1].
func FromMap(m map[string]float64) Vector {
	var v Vector
	for i, key := range Keys {
		val, ok := m[key]
		if !ok {
			val = Midpoint
		}
		v[i] = Clamp(val)
	}
	return v
}

// ToMap converts the vector to its wire mapping.
func (v Vector) ToMap() map[string]float64 {
	m := make(map[string]float64, Dimensions)
	for i, key := range Keys {
		m[key] = v[i]
	}
	return m
}

// Clamp restricts a value to [0,1].
func Clamp(val float64) float64 {
	return math.Min(1, math.Max(0, val))
}

// Clamped returns a copy of the vector with every component in [0,1].
func (v Vector) Clamped() Vector {
	for i := range v {
		v[i] = Clamp(v[i])
	}
	return v
}

// DistanceTo returns the Euclidean distance between two vectors.
func (v Vector) DistanceTo(o Vector) float64 {
	var sum float64
	for i := range v {
		d := v[i] - o[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity between two vectors.
// Defined as 0 when either vector has zero magnitude.
func (v Vector) Cosine(o Vector) float64 {
	var dot, normV, normO float64
	for i := range v {
		dot += v[i] * o[i]
		normV += v[i] * v[i]
		normO += o[i] * o[i]
	}
	normProduct := math.Sqrt(normV) * math.Sqrt(normO)
	if normProduct == 0 {
		return 0
	}
	return dot / normProduct
}

// Mean returns the component-wise mean of the given vectors.
// Returns the zero vector when vs is empty.
func Mean(vs []Vector) Vector {
	var m Vector
	if len(vs) == 0 {
		return m
	}
	for _, v := range vs {
		for i := range v {
			m[i] += v[i]
		}
	}
	for i := range m {
		m[i] /= float64(len(vs))
	}
	return m
}

// NormalizeTempo converts a raw BPM reading to the normalized tempo
// dimension, assuming a 200 BPM ceiling.
func NormalizeTempo(bpm float64) float64 {
	return Clamp(bpm / 200.0)
}

// NormalizeLoudness converts integrated loudness in dB (typical range
// -60..0) to the normalized loudness dimension.
func NormalizeLoudness(db float64) float64 {
	return Clamp((db + 60) / 60)
}
