package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SongRepository handles song database operations.
type SongRepository struct {
	pool *pgxpool.Pool
}

const songColumns = `
	id, spotify_id, title, artist, album, preview_url, external_url,
	image_url, duration_ms, popularity, bpm, key, scale,
	energy, danceability, acousticness, valence, instrumentalness, loudness,
	cluster_id, created_at
`

// Upsert creates or updates a song keyed by its Spotify id, filling in
// the database-assigned id and creation time.
func (r *SongRepository) Upsert(ctx context.Context, song *Song) error {
	query := `
		INSERT INTO songs (
			spotify_id, title, artist, album, preview_url, external_url,
			image_url, duration_ms, popularity, bpm, key, scale,
			energy, danceability, acousticness, valence, instrumentalness, loudness
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (spotify_id) DO UPDATE SET
			title = EXCLUDED.title,
			artist = EXCLUDED.artist,
			album = EXCLUDED.album,
			preview_url = EXCLUDED.preview_url,
			external_url = EXCLUDED.external_url,
			image_url = EXCLUDED.image_url,
			duration_ms = EXCLUDED.duration_ms,
			popularity = EXCLUDED.popularity,
			bpm = EXCLUDED.bpm,
			key = EXCLUDED.key,
			scale = EXCLUDED.scale,
			energy = EXCLUDED.energy,
			danceability = EXCLUDED.danceability,
			acousticness = EXCLUDED.acousticness,
			valence = EXCLUDED.valence,
			instrumentalness = EXCLUDED.instrumentalness,
			loudness = EXCLUDED.loudness
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		song.SpotifyID,
		song.Title,
		song.Artist,
		song.Album,
		song.PreviewURL,
		song.ExternalURL,
		song.ImageURL,
		song.DurationMs,
		song.Popularity,
		song.BPM,
		song.Key,
		song.Scale,
		song.Energy,
		song.Danceability,
		song.Acousticness,
		song.Valence,
		song.Instrumentalness,
		song.Loudness,
	).Scan(&song.ID, &song.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting song: %w", err)
	}
	return nil
}

// Get retrieves a song by ID.
func (r *SongRepository) Get(ctx context.Context, id int) (*Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	song, err := scanSong(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying song: %w", err)
	}
	return song, nil
}

// All retrieves every song, ordered by title.
func (r *SongRepository) All(ctx context.Context) ([]Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs ORDER BY title`
	return r.querySongs(ctx, query)
}

// ByCluster retrieves songs assigned to a cluster, ordered by title.
// A limit of 0 returns all of them.
func (r *SongRepository) ByCluster(ctx context.Context, clusterID, limit int) ([]Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE cluster_id = $1 ORDER BY title`
	if limit > 0 {
		return r.querySongs(ctx, query+` LIMIT $2`, clusterID, limit)
	}
	return r.querySongs(ctx, query, clusterID)
}

// AssignCluster points songs at a cluster in one statement.
func (r *SongRepository) AssignCluster(ctx context.Context, clusterID int, songIDs []int) error {
	if len(songIDs) == 0 {
		return nil
	}
	query := `UPDATE songs SET cluster_id = $1 WHERE id = ANY($2::int[])`
	_, err := r.pool.Exec(ctx, query, clusterID, songIDs)
	if err != nil {
		return fmt.Errorf("assigning songs to cluster: %w", err)
	}
	return nil
}

// UnassignAll clears every song's cluster reference.
func (r *SongRepository) UnassignAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `UPDATE songs SET cluster_id = NULL`)
	if err != nil {
		return fmt.Errorf("unassigning songs: %w", err)
	}
	return nil
}

func (r *SongRepository) querySongs(ctx context.Context, query string, args ...any) ([]Song, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning song: %w", err)
		}
		songs = append(songs, *song)
	}
	return songs, rows.Err()
}

// scanSong reads one song row in songColumns order.
func scanSong(row pgx.Row) (*Song, error) {
	var song Song
	err := row.Scan(
		&song.ID,
		&song.SpotifyID,
		&song.Title,
		&song.Artist,
		&song.Album,
		&song.PreviewURL,
		&song.ExternalURL,
		&song.ImageURL,
		&song.DurationMs,
		&song.Popularity,
		&song.BPM,
		&song.Key,
		&song.Scale,
		&song.Energy,
		&song.Danceability,
		&song.Acousticness,
		&song.Valence,
		&song.Instrumentalness,
		&song.Loudness,
		&song.ClusterID,
		&song.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &song, nil
}
