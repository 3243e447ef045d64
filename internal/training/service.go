// Package training orchestrates cluster training runs: loading songs,
// running k-means, and persisting the resulting clusters.
package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/musicmatch/music-match/internal/clustering"
	"github.com/musicmatch/music-match/internal/db"
	"github.com/musicmatch/music-match/internal/feature"
)

// ErrNoSongs is returned when training is attempted on an empty library.
var ErrNoSongs = errors.New("no songs in database")

// Service handles cluster training and persistence.
type Service struct {
	db  *db.DB
	log zerolog.Logger
}

// New creates a training service.
func New(database *db.DB, log zerolog.Logger) *Service {
	return &Service{db: database, log: log}
}

// Options control one training run.
type Options struct {
	ClusterCount int  // Fixed k; ignored when Auto is set
	Auto         bool // Scan for the best k by silhouette score
}

// TrainResult contains the outcome of a training run.
type TrainResult struct {
	Clusters   []db.Cluster // Persisted clusters with assigned ids
	K          int          // Cluster count actually used
	Silhouette float64      // Partition quality in [-1,1]
	SongCount  int          // Songs analyzed
}

// Run trains clusters over every song in the database and replaces the
// persisted set wholesale. A failure during training leaves the stored
// clusters untouched. Persistence clears the old set before writing
// the new one and is not transactional, so a failure partway through
// can leave a partial set; rerunning replaces it.
func (s *Service) Run(ctx context.Context, opts Options) (*TrainResult, error) {
	songs, err := s.db.Songs().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading songs: %w", err)
	}
	if len(songs) == 0 {
		return nil, ErrNoSongs
	}

	vectors := make([]feature.Vector, len(songs))
	for i, song := range songs {
		vectors[i] = song.Vector()
	}

	trainer := clustering.NewTrainer(clustering.DefaultConfig())

	k := opts.ClusterCount
	if opts.Auto {
		k, err = trainer.FindOptimalK(vectors, clustering.DefaultMinK, clustering.DefaultMaxK)
		if err != nil {
			return nil, fmt.Errorf("finding optimal k: %w", err)
		}
		s.log.Info().Int("k", k).Msg("selected optimal cluster count")
	}

	result, err := trainer.Train(vectors, k)
	if err != nil {
		return nil, fmt.Errorf("training clusters: %w", err)
	}
	s.log.Info().Int("k", k).Int("songs", len(songs)).
		Float64("silhouette", result.Silhouette).
		Msg("training complete")

	persisted, err := s.persist(ctx, songs, result)
	if err != nil {
		return nil, err
	}

	return &TrainResult{
		Clusters:   persisted,
		K:          k,
		Silhouette: result.Silhouette,
		SongCount:  len(songs),
	}, nil
}

// persist clears the previous cluster set and writes the new one,
// reassigning every song.
func (s *Service) persist(ctx context.Context, songs []db.Song, result *clustering.Result) ([]db.Cluster, error) {
	if err := s.db.Clusters().Clear(ctx); err != nil {
		return nil, fmt.Errorf("clearing clusters: %w", err)
	}

	// Group song ids by their assigned cluster index.
	members := make([][]int, len(result.Centroids))
	for i, song := range songs {
		idx := result.Assignments[i]
		members[idx] = append(members[idx], song.ID)
	}

	persisted := make([]db.Cluster, 0, len(result.Centroids))
	for idx, centroid := range result.Centroids {
		cluster := db.Cluster{
			Centroid:    centroid,
			Description: clustering.Describe(centroid),
			Emoji:       clustering.MoodEmoji(centroid),
			SongCount:   len(members[idx]),
		}
		if err := s.db.Clusters().Create(ctx, &cluster); err != nil {
			return nil, fmt.Errorf("creating cluster %q: %w", cluster.Description, err)
		}

		if err := s.db.Songs().AssignCluster(ctx, cluster.ID, members[idx]); err != nil {
			return nil, fmt.Errorf("assigning songs to cluster %d: %w", cluster.ID, err)
		}

		s.log.Info().Int("cluster_id", cluster.ID).
			Int("songs", cluster.SongCount).
			Str("description", cluster.Description).
			Msg("cluster created")
		persisted = append(persisted, cluster)
	}

	return persisted, nil
}
