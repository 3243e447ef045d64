package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/musicmatch/music-match/internal/feature"
)

// Song represents a catalog entry with audio features and metadata.
// Feature columns other than BPM are stored normalized to [0,1].
type Song struct {
	ID          int
	SpotifyID   *string // nullable
	Title       string
	Artist      string
	Album       *string // nullable
	PreviewURL  *string // nullable
	ExternalURL *string // nullable
	ImageURL    *string // nullable
	DurationMs  *int    // nullable
	Popularity  int
	BPM         float64 // raw beats per minute
	Key         string
	Scale       string

	Energy           float64
	Danceability     float64
	Acousticness     float64
	Valence          float64
	Instrumentalness float64
	Loudness         float64

	ClusterID *int // nullable until a training run assigns it
	CreatedAt time.Time
}

// Vector returns the song's canonical feature vector.
func (s *Song) Vector() feature.Vector {
	var v feature.Vector
	v[feature.Tempo] = feature.NormalizeTempo(s.BPM)
	v[feature.Energy] = feature.Clamp(s.Energy)
	v[feature.Danceability] = feature.Clamp(s.Danceability)
	v[feature.Acousticness] = feature.Clamp(s.Acousticness)
	v[feature.Valence] = feature.Clamp(s.Valence)
	v[feature.Instrumentalness] = feature.Clamp(s.Instrumentalness)
	v[feature.Loudness] = feature.Clamp(s.Loudness)
	return v
}

// Cluster represents one taste cluster produced by a training run.
// Ids are assigned by the database; the engine never invents them.
type Cluster struct {
	ID          int
	Centroid    feature.Vector
	Description string
	Emoji       string
	SongCount   int
}

// UserProfile is a taste vector derived from quiz answers.
type UserProfile struct {
	ID               uuid.UUID
	Vector           feature.Vector
	MatchedClusterID *int // nullable
	CreatedAt        time.Time
}
