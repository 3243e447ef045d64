package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/musicmatch/music-match/internal/feature"
)

// ProfileRepository handles user profile database operations.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a user profile, generating an id if none is set.
func (r *ProfileRepository) Create(ctx context.Context, profile *UserProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	query := `
		INSERT INTO user_profiles (
			id, bpm_normalized, energy, danceability, acousticness,
			valence, instrumentalness, loudness, matched_cluster_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	v := profile.Vector
	err := r.pool.QueryRow(ctx, query,
		profile.ID,
		v[feature.Tempo],
		v[feature.Energy],
		v[feature.Danceability],
		v[feature.Acousticness],
		v[feature.Valence],
		v[feature.Instrumentalness],
		v[feature.Loudness],
		profile.MatchedClusterID,
	).Scan(&profile.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting user profile: %w", err)
	}
	return nil
}

// Get retrieves a user profile by ID.
func (r *ProfileRepository) Get(ctx context.Context, id uuid.UUID) (*UserProfile, error) {
	query := `
		SELECT id, bpm_normalized, energy, danceability, acousticness,
			valence, instrumentalness, loudness, matched_cluster_id, created_at
		FROM user_profiles
		WHERE id = $1
	`
	var profile UserProfile
	v := &profile.Vector
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&v[feature.Tempo],
		&v[feature.Energy],
		&v[feature.Danceability],
		&v[feature.Acousticness],
		&v[feature.Valence],
		&v[feature.Instrumentalness],
		&v[feature.Loudness],
		&profile.MatchedClusterID,
		&profile.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user profile: %w", err)
	}
	return &profile, nil
}
