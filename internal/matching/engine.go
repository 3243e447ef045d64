// Package matching selects the nearest taste cluster for a query
// vector and ranks candidate songs by similarity. All operations are
// pure, read-only functions of their inputs and store snapshots, and
// are safe for arbitrary concurrency.
package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/musicmatch/music-match/internal/db"
	"github.com/musicmatch/music-match/internal/feature"
)

// DefaultLimit caps ranked results when the caller does not specify one.
const DefaultLimit = 20

const (
	adjacentCount    = 2 // adjacent previews returned, matched cluster excluded
	adjacentSample   = 3 // preview songs per adjacent cluster
	matchedSample    = 5 // preview songs for the matched cluster
	adjacentScanSize = adjacentCount + 1
)

// Centroid is a cluster's id paired with its centroid vector.
type Centroid struct {
	ID     int
	Vector feature.Vector
}

// NearestCluster returns the id of the centroid with minimum Euclidean
// distance from the query, along with that distance. On exact distance
// ties the first centroid in list order wins, which makes centroid
// ordering part of the contract. Returns ok=false when the list is
// empty.
func NearestCluster(query feature.Vector, centroids []Centroid) (id int, distance float64, ok bool) {
	for i, c := range centroids {
		d := query.DistanceTo(c.Vector)
		if i == 0 || d < distance {
			id = c.ID
			distance = d
			ok = true
		}
	}
	return id, distance, ok
}

// AdjacentClusters returns the ids of the n centroids closest to the
// query, sorted ascending by distance. The sort is stable, so ties
// preserve input order.
func AdjacentClusters(query feature.Vector, centroids []Centroid, n int) []int {
	type scored struct {
		id       int
		distance float64
	}
	distances := make([]scored, len(centroids))
	for i, c := range centroids {
		distances[i] = scored{id: c.ID, distance: query.DistanceTo(c.Vector)}
	}
	sort.SliceStable(distances, func(i, j int) bool {
		return distances[i].distance < distances[j].distance
	})
	if n > len(distances) {
		n = len(distances)
	}
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = distances[i].id
	}
	return ids
}

// RankedSong is a song annotated with its similarity to a query.
type RankedSong struct {
	Song  db.Song
	Score float64
}

// RankSongs scores each song by cosine similarity to the query, sorts
// descending, and truncates to limit. The sort is stable, so songs
// with equal scores keep their input order. Cosine similarity is used
// rather than Euclidean distance because it normalizes for overall
// magnitude of the [0,1]-scaled vectors.
func RankSongs(query feature.Vector, songs []db.Song, limit int) []RankedSong {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]RankedSong, len(songs))
	for i, s := range songs {
		ranked[i] = RankedSong{Song: s, Score: query.Cosine(s.Vector())}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// Store provides read access to persisted clusters and songs.
type Store interface {
	Clusters(ctx context.Context) ([]db.Cluster, error)
	ClusterByID(ctx context.Context, id int) (*db.Cluster, error)
	SongsByCluster(ctx context.Context, clusterID, limit int) ([]db.Song, error)
}

// dbStore adapts the database repositories to the Store interface.
type dbStore struct {
	database *db.DB
}

// NewDBStore wraps a database handle as a Store.
func NewDBStore(database *db.DB) Store {
	return dbStore{database: database}
}

func (s dbStore) Clusters(ctx context.Context) ([]db.Cluster, error) {
	return s.database.Clusters().All(ctx)
}

func (s dbStore) ClusterByID(ctx context.Context, id int) (*db.Cluster, error) {
	return s.database.Clusters().Get(ctx, id)
}

func (s dbStore) SongsByCluster(ctx context.Context, clusterID, limit int) ([]db.Song, error) {
	return s.database.Songs().ByCluster(ctx, clusterID, limit)
}

// MatchedCluster is the cluster nearest the query, with its distance
// and a small preview sample.
type MatchedCluster struct {
	Cluster     db.Cluster
	Distance    float64
	SampleSongs []db.Song
}

// AdjacentCluster is a next-best cluster with a preview sample.
type AdjacentCluster struct {
	Cluster     db.Cluster
	SampleSongs []db.Song
}

// Recommendations is the full match result for a query vector.
type Recommendations struct {
	Matched  *MatchedCluster
	Songs    []RankedSong
	Adjacent []AdjacentCluster
}

// Engine composes cluster matching and song ranking over a store. The
// store is an explicit dependency so tests can substitute fakes.
type Engine struct {
	store Store
}

// NewEngine creates a matching engine over the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Recommendations locates the cluster nearest the query, ranks its
// members by similarity, and gathers up to two adjacent cluster
// previews. An unconfigured system (no clusters yet) yields an empty
// result, not an error.
func (e *Engine) Recommendations(ctx context.Context, query feature.Vector, limit int) (*Recommendations, error) {
	clusters, err := e.store.Clusters(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading clusters: %w", err)
	}
	if len(clusters) == 0 {
		return &Recommendations{}, nil
	}

	centroids := make([]Centroid, len(clusters))
	byID := make(map[int]db.Cluster, len(clusters))
	for i, c := range clusters {
		centroids[i] = Centroid{ID: c.ID, Vector: c.Centroid}
		byID[c.ID] = c
	}

	matchedID, distance, _ := NearestCluster(query, centroids)

	members, err := e.store.SongsByCluster(ctx, matchedID, 0)
	if err != nil {
		return nil, fmt.Errorf("loading cluster songs: %w", err)
	}
	ranked := RankSongs(query, members, limit)

	sample, err := e.store.SongsByCluster(ctx, matchedID, matchedSample)
	if err != nil {
		return nil, fmt.Errorf("loading matched sample: %w", err)
	}

	matched := &MatchedCluster{
		Cluster:     byID[matchedID],
		Distance:    distance,
		SampleSongs: sample,
	}

	// Scan one extra so dropping the matched cluster still leaves
	// enough alternatives.
	adjacentIDs := AdjacentClusters(query, centroids, adjacentScanSize)
	var adjacent []AdjacentCluster
	for _, id := range adjacentIDs {
		if id == matchedID || len(adjacent) == adjacentCount {
			continue
		}
		preview, err := e.store.SongsByCluster(ctx, id, adjacentSample)
		if err != nil {
			return nil, fmt.Errorf("loading adjacent sample: %w", err)
		}
		adjacent = append(adjacent, AdjacentCluster{
			Cluster:     byID[id],
			SampleSongs: preview,
		})
	}

	return &Recommendations{
		Matched:  matched,
		Songs:    ranked,
		Adjacent: adjacent,
	}, nil
}

// ClusterRecommendations returns songs from one specific cluster,
// ranked by similarity when a query vector is supplied and in store
// order otherwise. Fails with the store's not-found error when the
// cluster does not exist.
func (e *Engine) ClusterRecommendations(ctx context.Context, clusterID int, query *feature.Vector, limit int) ([]RankedSong, error) {
	if _, err := e.store.ClusterByID(ctx, clusterID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	songs, err := e.store.SongsByCluster(ctx, clusterID, 0)
	if err != nil {
		return nil, fmt.Errorf("loading cluster songs: %w", err)
	}

	if query != nil {
		return RankSongs(*query, songs, limit), nil
	}

	if limit < len(songs) {
		songs = songs[:limit]
	}
	ranked := make([]RankedSong, len(songs))
	for i, s := range songs {
		ranked[i] = RankedSong{Song: s}
	}
	return ranked, nil
}
