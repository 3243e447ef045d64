package importer

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/musicmatch/music-match/internal/db"
	"github.com/musicmatch/music-match/internal/feature"
)

// DefaultSeedCount is the number of songs a seed run generates when
// the caller does not specify one.
const DefaultSeedCount = 50

// tasteProfile anchors synthetic songs around a recognizable style so
// seeded data forms natural groupings instead of uniform noise.
type tasteProfile struct {
	name   string
	center feature.Vector
	jitter float64
}

var tasteProfiles = []tasteProfile{
	{name: "energetic", jitter: 0.15, center: feature.Vector{0.72, 0.80, 0.75, 0.15, 0.70, 0.25, 0.70}},
	{name: "chill", jitter: 0.15, center: feature.Vector{0.40, 0.25, 0.40, 0.55, 0.50, 0.45, 0.35}},
	{name: "acoustic", jitter: 0.15, center: feature.Vector{0.50, 0.40, 0.35, 0.85, 0.50, 0.35, 0.35}},
	{name: "electronic", jitter: 0.15, center: feature.Vector{0.62, 0.70, 0.80, 0.10, 0.55, 0.65, 0.65}},
	{name: "balanced", jitter: 0.20, center: feature.Vector{0.55, 0.50, 0.50, 0.40, 0.50, 0.40, 0.45}},
}

var seedArtists = []string{
	"The Midnight Echo", "Luna Vega", "Neon Dreams", "Arctic Pulse",
	"Solar Flare", "Velvet Thunder", "Crystal Waters", "Iron Butterfly",
	"Silver Moon", "Electric Storm", "Golden Hour", "Midnight Sun",
	"Ocean Drive", "Desert Rose", "Mountain High", "River Flow",
	"City Lights", "Forest Rain", "Summer Haze", "Winter Chill",
	"Dawn Patrol", "Dusk Riders", "Aurora", "Zenith",
	"Horizon", "Eclipse", "Nova", "Stellar",
	"Cosmos", "Galaxy", "Nebula", "Pulsar",
}

var titleParts = [][]string{
	{"Dancing", "Running", "Flying", "Falling", "Rising", "Fading", "Glowing", "Burning"},
	{"Through", "Into", "Beyond", "Under", "Over", "Within", "Among", "Between"},
	{"Stars", "Dreams", "Waves", "Lights", "Shadows", "Flames", "Clouds", "Rain"},
}

var titleSingles = []string{
	"Euphoria", "Melancholy", "Serenity", "Chaos", "Bliss", "Tempest",
	"Whispers", "Thunder", "Silence", "Echo", "Reflection", "Mirage",
	"Solitude", "Paradise", "Illusion", "Reverie", "Momentum", "Gravity",
	"Infinity", "Eternity", "Daybreak", "Twilight", "Midnight", "Dawn",
}

// Seed generates count synthetic songs and upserts them. Songs are
// keyed by a stable synthetic id, so reseeding updates rather than
// duplicates. The seed fixes all randomness, making runs repeatable.
func (s *Service) Seed(ctx context.Context, count int, seed int64) (*Result, error) {
	if count <= 0 {
		count = DefaultSeedCount
	}

	rng := rand.New(rand.NewSource(seed))
	gen := feature.NewSyntheticSource(seed)

	result := &Result{}
	for i := 0; i < count; i++ {
		profile := tasteProfiles[rng.Intn(len(tasteProfiles))]
		raw := gen.GenerateNear(profile.center, profile.jitter)

		song := db.Song{
			SpotifyID:        strPtr(fmt.Sprintf("synthetic-%04d", i+1)),
			Title:            generateTitle(rng),
			Artist:           seedArtists[rng.Intn(len(seedArtists))],
			BPM:              raw.BPM,
			Key:              raw.Key,
			Scale:            raw.Scale,
			Energy:           feature.Clamp(raw.Energy),
			Danceability:     feature.Clamp(raw.Danceability),
			Acousticness:     feature.Clamp(raw.Acousticness),
			Valence:          feature.Clamp(raw.Valence),
			Instrumentalness: feature.Clamp(raw.Instrumentalness),
			Loudness:         feature.NormalizeLoudness(raw.LoudnessDB),
		}
		if err := s.db.Songs().Upsert(ctx, &song); err != nil {
			return nil, fmt.Errorf("upserting seed song %d: %w", i+1, err)
		}
		result.Imported++

		if result.Imported%10 == 0 {
			s.log.Info().Int("created", result.Imported).Msg("seeding songs")
		}
	}

	s.log.Info().Int("count", result.Imported).Msg("seed finished")
	return result, nil
}

// generateTitle produces a random song title, mixing single-word and
// three-part names.
func generateTitle(rng *rand.Rand) string {
	if rng.Float64() < 0.4 {
		return titleSingles[rng.Intn(len(titleSingles))]
	}
	words := make([]string, len(titleParts))
	for i, part := range titleParts {
		words[i] = part[rng.Intn(len(part))]
	}
	return strings.Join(words, " ")
}
