package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/musicmatch/music-match/internal/feature"
)

// ClusterRepository handles cluster database operations.
type ClusterRepository struct {
	pool *pgxpool.Pool
}

const clusterColumns = `
	id, bpm_normalized, energy, danceability, acousticness,
	valence, instrumentalness, loudness, description, emoji, song_count
`

// Create inserts a new cluster, filling in the database-assigned id.
func (r *ClusterRepository) Create(ctx context.Context, cluster *Cluster) error {
	query := `
		INSERT INTO clusters (
			bpm_normalized, energy, danceability, acousticness,
			valence, instrumentalness, loudness, description, emoji, song_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	c := cluster.Centroid
	err := r.pool.QueryRow(ctx, query,
		c[feature.Tempo],
		c[feature.Energy],
		c[feature.Danceability],
		c[feature.Acousticness],
		c[feature.Valence],
		c[feature.Instrumentalness],
		c[feature.Loudness],
		cluster.Description,
		cluster.Emoji,
		cluster.SongCount,
	).Scan(&cluster.ID)
	if err != nil {
		return fmt.Errorf("inserting cluster: %w", err)
	}
	return nil
}

// Get retrieves a cluster by ID.
func (r *ClusterRepository) Get(ctx context.Context, id int) (*Cluster, error) {
	query := `SELECT ` + clusterColumns + ` FROM clusters WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	cluster, err := scanCluster(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying cluster: %w", err)
	}
	return cluster, nil
}

// All retrieves every cluster, ordered by id.
func (r *ClusterRepository) All(ctx context.Context) ([]Cluster, error) {
	query := `SELECT ` + clusterColumns + ` FROM clusters ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying clusters: %w", err)
	}
	defer rows.Close()

	var clusters []Cluster
	for rows.Next() {
		cluster, err := scanCluster(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cluster: %w", err)
		}
		clusters = append(clusters, *cluster)
	}
	return clusters, rows.Err()
}

// UpdateSongCount sets the member count for a cluster.
func (r *ClusterRepository) UpdateSongCount(ctx context.Context, id, count int) error {
	result, err := r.pool.Exec(ctx, `UPDATE clusters SET song_count = $2 WHERE id = $1`, id, count)
	if err != nil {
		return fmt.Errorf("updating song count: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear deletes every cluster and unassigns all songs in one
// transaction. Each training run replaces clusters wholesale, so this
// runs before new clusters are persisted.
func (r *ClusterRepository) Clear(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE songs SET cluster_id = NULL`); err != nil {
		return fmt.Errorf("unassigning songs: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM clusters`); err != nil {
		return fmt.Errorf("deleting clusters: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// scanCluster reads one cluster row in clusterColumns order.
func scanCluster(row pgx.Row) (*Cluster, error) {
	var cluster Cluster
	c := &cluster.Centroid
	err := row.Scan(
		&cluster.ID,
		&c[feature.Tempo],
		&c[feature.Energy],
		&c[feature.Danceability],
		&c[feature.Acousticness],
		&c[feature.Valence],
		&c[feature.Instrumentalness],
		&c[feature.Loudness],
		&cluster.Description,
		&cluster.Emoji,
		&cluster.SongCount,
	)
	if err != nil {
		return nil, err
	}
	return &cluster, nil
}
