package feature

import (
	"context"
	"math/rand"
)

// RawFeatures holds un-normalized audio descriptors as produced by an
// analysis backend. Scalar fields other than BPM and LoudnessDB are
// already on a 0-1 scale.
type RawFeatures struct {
	BPM              float64
	Key              string
	Scale            string // "major" or "minor"
	Energy           float64
	Danceability     float64
	Acousticness     float64
	Valence          float64
	Instrumentalness float64
	LoudnessDB       float64
}

// Vector normalizes the raw descriptors into the canonical vector.
func (r RawFeatures) Vector() Vector {
	var v Vector
	v[Tempo] = NormalizeTempo(r.BPM)
	v[Energy] = Clamp(r.Energy)
	v[Danceability] = Clamp(r.Danceability)
	v[Acousticness] = Clamp(r.Acousticness)
	v[Valence] = Clamp(r.Valence)
	v[Instrumentalness] = Clamp(r.Instrumentalness)
	v[Loudness] = NormalizeLoudness(r.LoudnessDB)
	return v
}

// Source produces audio descriptors for catalog track ids. Ids with no
// available analysis are absent from the returned map.
//
// Two implementations exist: the catalog-backed source (real analysis
// data) and SyntheticSource (generated data). The variant is selected
// once at startup and never swapped mid-run.
type Source interface {
	Features(ctx context.Context, ids []string) (map[string]RawFeatures, error)
}

var keyNames = []string{"C", "D", "E", "F", "G", "A", "B"}

// SyntheticSource generates plausible audio descriptors from a seeded
// RNG. It stands in for real analysis when no catalog credentials are
// configured, and backs the seed command.
type SyntheticSource struct {
	rng *rand.Rand
}

// NewSyntheticSource creates a synthetic source with a fixed seed so
// repeated runs produce identical data.
func NewSyntheticSource(seed int64) *SyntheticSource {
	return &SyntheticSource{rng: rand.New(rand.NewSource(seed))}
}

// Features generates descriptors for every requested id.
func (s *SyntheticSource) Features(_ context.Context, ids []string) (map[string]RawFeatures, error) {
	out := make(map[string]RawFeatures, len(ids))
	for _, id := range ids {
		out[id] = s.Generate()
	}
	return out, nil
}

// Generate produces one set of random descriptors.
func (s *SyntheticSource) Generate() RawFeatures {
	scale := "major"
	if s.rng.Float64() < 0.5 {
		scale = "minor"
	}
	return RawFeatures{
		BPM:              60 + s.rng.Float64()*120,
		Key:              keyNames[s.rng.Intn(len(keyNames))],
		Scale:            scale,
		Energy:           s.rng.Float64(),
		Danceability:     s.rng.Float64(),
		Acousticness:     s.rng.Float64(),
		Valence:          s.rng.Float64(),
		Instrumentalness: s.rng.Float64(),
		LoudnessDB:       -60 + s.rng.Float64()*60,
	}
}

// GenerateNear produces descriptors whose normalized vector lands close
// to the given profile, within +/-jitter per dimension. Used to seed
// recognizable taste groups.
func (s *SyntheticSource) GenerateNear(profile Vector, jitter float64) RawFeatures {
	perturb := func(dim int) float64 {
		return Clamp(profile[dim] + (s.rng.Float64()*2-1)*jitter)
	}
	scale := "major"
	if profile[Valence] < Midpoint && s.rng.Float64() < 0.7 {
		scale = "minor"
	}
	return RawFeatures{
		BPM:              perturb(Tempo) * 200,
		Key:              keyNames[s.rng.Intn(len(keyNames))],
		Scale:            scale,
		Energy:           perturb(Energy),
		Danceability:     perturb(Danceability),
		Acousticness:     perturb(Acousticness),
		Valence:          perturb(Valence),
		Instrumentalness: perturb(Instrumentalness),
		LoudnessDB:       perturb(Loudness)*60 - 60,
	}
}
