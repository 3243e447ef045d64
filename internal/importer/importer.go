// Package importer provides services for loading songs into the
// database, either from the catalog or from synthetic seed data.
package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/musicmatch/music-match/internal/catalog"
	"github.com/musicmatch/music-match/internal/db"
	"github.com/musicmatch/music-match/internal/feature"
)

// ErrNoCatalog is returned when an import is attempted without catalog
// credentials configured.
var ErrNoCatalog = errors.New("catalog client not configured")

// Service handles importing songs into the database.
type Service struct {
	db      *db.DB
	catalog *catalog.Client
	source  feature.Source
	log     zerolog.Logger
}

// New creates an import service. The catalog client may be nil, in
// which case only seeding is available.
func New(database *db.DB, cat *catalog.Client, source feature.Source, log zerolog.Logger) *Service {
	return &Service{
		db:      database,
		catalog: cat,
		source:  source,
		log:     log,
	}
}

// Result contains the outcome of an import or seed run.
type Result struct {
	Imported int
	Skipped  int
}

// Import searches the catalog for tracks matching the query, fetches
// their audio descriptors, and upserts them as songs. Tracks with no
// available analysis are skipped, not failed.
func (s *Service) Import(ctx context.Context, query string, limit int) (*Result, error) {
	if s.catalog == nil {
		return nil, ErrNoCatalog
	}

	tracks, err := s.catalog.SearchTracks(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	if len(tracks) == 0 {
		return &Result{}, nil
	}

	ids := make([]string, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}

	descriptors, err := s.source.Features(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching audio features: %w", err)
	}

	result := &Result{}
	for _, t := range tracks {
		raw, ok := descriptors[t.ID]
		if !ok {
			s.log.Debug().Str("track_id", t.ID).Str("title", t.Title).
				Msg("no audio features, skipping")
			result.Skipped++
			continue
		}

		song := songFromTrack(t, raw)
		if err := s.db.Songs().Upsert(ctx, &song); err != nil {
			return nil, fmt.Errorf("upserting song %q: %w", t.Title, err)
		}
		result.Imported++
	}

	s.log.Info().Str("query", query).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("import finished")
	return result, nil
}

// songFromTrack combines catalog metadata and raw descriptors into a
// song row, normalizing features to the canonical scale.
func songFromTrack(t catalog.Track, raw feature.RawFeatures) db.Song {
	song := db.Song{
		SpotifyID:        strPtr(t.ID),
		Title:            t.Title,
		Artist:           t.Artist,
		Popularity:       t.Popularity,
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
	if t.Album != "" {
		song.Album = strPtr(t.Album)
	}
	if t.PreviewURL != "" {
		song.PreviewURL = strPtr(t.PreviewURL)
	}
	if t.ExternalURL != "" {
		song.ExternalURL = strPtr(t.ExternalURL)
	}
	if t.ImageURL != "" {
		song.ImageURL = strPtr(t.ImageURL)
	}
	if t.DurationMs > 0 {
		song.DurationMs = &t.DurationMs
	}
	return song
}

func strPtr(s string) *string {
	return &s
}
