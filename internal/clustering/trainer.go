// Package clustering partitions song feature vectors into taste
// clusters using seeded k-means and scores partitions with the
// silhouette coefficient.
package clustering

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/muesli/clusters"

	"github.com/musicmatch/music-match/internal/feature"
)

// Common errors.
var (
	ErrEmptyInput          = errors.New("no feature vectors to train on")
	ErrInvalidClusterCount = errors.New("invalid cluster count")
)

// Default model-selection range for FindOptimalK.
const (
	DefaultMinK = 4
	DefaultMaxK = 14
)

// Config holds training parameters.
type Config struct {
	Seed          int64 // RNG seed; fixed so identical input yields identical output
	Restarts      int   // Independent runs; the lowest-inertia run wins
	MaxIterations int   // Iteration cap per run
}

// DefaultConfig returns the recommended training configuration.
func DefaultConfig() Config {
	return Config{
		Seed:          42,
		Restarts:      10,
		MaxIterations: 300,
	}
}

// Result is the outcome of one training run.
type Result struct {
	Centroids   []feature.Vector // One per cluster, components in [0,1]
	Assignments []int            // Cluster index per input vector
	Silhouette  float64          // Partition quality in [-1,1]
	Inertia     float64          // Within-cluster sum of squared distances
}

// Trainer runs k-means over feature vectors. Training is synchronous
// and CPU-bound; it performs no I/O.
type Trainer struct {
	cfg Config
}

// NewTrainer creates a trainer, applying defaults for zero-valued
// config fields.
func NewTrainer(cfg Config) *Trainer {
	def := DefaultConfig()
	if cfg.Restarts <= 0 {
		cfg.Restarts = def.Restarts
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	return &Trainer{cfg: cfg}
}

// vectorObservation adapts a feature vector to the clusters.Observation
// interface, remembering its input position.
type vectorObservation struct {
	index  int
	coords clusters.Coordinates
}

func (o vectorObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o vectorObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Train partitions vectors into k clusters. It runs the configured
// number of independent k-means++ restarts and keeps the run with the
// lowest inertia, then scores the winning partition.
//
// Fails with ErrEmptyInput when vectors is empty and with
// ErrInvalidClusterCount when k is outside [1, len(vectors)-1].
func (t *Trainer) Train(vectors []feature.Vector, k int) (*Result, error) {
	n := len(vectors)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if k < 1 || k >= n {
		return nil, fmt.Errorf("%w: k=%d with %d vectors", ErrInvalidClusterCount, k, n)
	}

	obs := make(clusters.Observations, n)
	for i, v := range vectors {
		coords := make(clusters.Coordinates, feature.Dimensions)
		copy(coords, v[:])
		obs[i] = vectorObservation{index: i, coords: coords}
	}

	// A single RNG drives all restarts so the whole procedure is a
	// deterministic function of the seed.
	rng := rand.New(rand.NewSource(t.cfg.Seed))

	var bestClusters clusters.Clusters
	var bestAssignments []int
	bestInertia := math.Inf(1)

	for run := 0; run < t.cfg.Restarts; run++ {
		cc, assignments := t.partition(obs, k, rng)
		inertia := partitionInertia(cc, obs, assignments)
		if inertia < bestInertia {
			bestInertia = inertia
			bestClusters = cc
			bestAssignments = assignments
		}
	}

	centroids := make([]feature.Vector, k)
	for i, c := range bestClusters {
		var v feature.Vector
		copy(v[:], c.Center)
		centroids[i] = v.Clamped()
	}

	return &Result{
		Centroids:   centroids,
		Assignments: bestAssignments,
		Silhouette:  Silhouette(vectors, bestAssignments),
		Inertia:     bestInertia,
	}, nil
}

// partition runs one round of Lloyd's algorithm from a k-means++
// seeding.
func (t *Trainer) partition(obs clusters.Observations, k int, rng *rand.Rand) (clusters.Clusters, []int) {
	cc := seedCentroids(obs, k, rng)

	assignments := make([]int, len(obs))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < t.cfg.MaxIterations; iter++ {
		cc.Reset()

		changed := false
		for i, o := range obs {
			nearest := cc.Nearest(o)
			cc[nearest].Append(o)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed = true
			}
		}

		// An empty cluster keeps its previous center.
		for i := range cc {
			if len(cc[i].Observations) > 0 {
				cc[i].Recenter()
			}
		}

		if !changed {
			break
		}
	}

	return cc, assignments
}

// seedCentroids picks k starting centers with k-means++: the first
// uniformly at random, the rest by roulette selection weighted by
// squared distance to the nearest already-chosen center.
func seedCentroids(obs clusters.Observations, k int, rng *rand.Rand) clusters.Clusters {
	cc := make(clusters.Clusters, 0, k)
	cc = append(cc, clusterAt(obs[rng.Intn(len(obs))]))

	for len(cc) < k {
		weights := make([]float64, len(obs))
		var total float64
		for i, o := range obs {
			minDist := math.Inf(1)
			for _, c := range cc {
				// Coordinates.Distance is squared Euclidean, which is
				// exactly the k-means++ weight.
				if d := o.Distance(c.Center); d < minDist {
					minDist = d
				}
			}
			weights[i] = minDist
			total += minDist
		}

		if total == 0 {
			// Every point coincides with a chosen center; fall back to
			// uniform selection.
			cc = append(cc, clusterAt(obs[rng.Intn(len(obs))]))
			continue
		}

		r := rng.Float64() * total
		idx := len(obs) - 1
		var sum float64
		for i, w := range weights {
			sum += w
			if sum >= r {
				idx = i
				break
			}
		}
		cc = append(cc, clusterAt(obs[idx]))
	}

	return cc
}

// clusterAt creates a cluster centered on an observation's coordinates.
func clusterAt(o clusters.Observation) clusters.Cluster {
	center := make(clusters.Coordinates, len(o.Coordinates()))
	copy(center, o.Coordinates())
	return clusters.Cluster{Center: center}
}

// partitionInertia sums squared distances from each observation to its
// assigned center.
func partitionInertia(cc clusters.Clusters, obs clusters.Observations, assignments []int) float64 {
	var inertia float64
	for i, o := range obs {
		inertia += o.Distance(cc[assignments[i]].Center)
	}
	return inertia
}

// FindOptimalK trains once per candidate k in [minK, maxK] and returns
// the k with the highest silhouette score. Candidates with k >= N are
// skipped since k-means is undefined there. Ties are broken by the
// first (lowest) k encountered during the scan.
//
// Fails with ErrEmptyInput when vectors is empty and with
// ErrInvalidClusterCount when no candidate in the range is trainable.
func (t *Trainer) FindOptimalK(vectors []feature.Vector, minK, maxK int) (int, error) {
	if len(vectors) == 0 {
		return 0, ErrEmptyInput
	}

	bestK := 0
	bestScore := math.Inf(-1)
	tried := false

	for k := minK; k <= maxK; k++ {
		if k >= len(vectors) {
			break
		}
		res, err := t.Train(vectors, k)
		if err != nil {
			return 0, err
		}
		tried = true
		if res.Silhouette > bestScore {
			bestScore = res.Silhouette
			bestK = k
		}
	}

	if !tried {
		return 0, fmt.Errorf("%w: no trainable k in [%d,%d] for %d vectors",
			ErrInvalidClusterCount, minK, maxK, len(vectors))
	}
	return bestK, nil
}
