// Package projection reduces feature vectors to a shared 2D space for
// visualization using principal component analysis.
package projection

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/musicmatch/music-match/internal/feature"
)

// Common errors.
var (
	ErrInsufficientData = errors.New("need at least 2 vectors to fit a 2D projection")
	ErrDecomposition    = errors.New("singular value decomposition failed")
)

// Point is a 2D coordinate in the fitted projection space.
type Point struct {
	X float64
	Y float64
}

// Projection is a 2-component PCA basis fitted on a reference vector
// set. The same fitted basis must be reused for every set projected
// into the space — refitting would place the sets in incomparable
// coordinate systems.
type Projection struct {
	means      []float64
	components *mat.Dense // Dimensions x 2
}

// Fit learns the projection basis from a reference set, choosing the
// two directions of greatest variance.
func Fit(vectors []feature.Vector) (*Projection, error) {
	n := len(vectors)
	if n < 2 {
		return nil, ErrInsufficientData
	}

	data := make([]float64, 0, n*feature.Dimensions)
	for _, v := range vectors {
		data = append(data, v[:]...)
	}
	x := mat.NewDense(n, feature.Dimensions, data)

	means := make([]float64, feature.Dimensions)
	for j := 0; j < feature.Dimensions; j++ {
		means[j] = stat.Mean(mat.Col(nil, j, x), nil)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < feature.Dimensions; j++ {
			x.Set(i, j, x.At(i, j)-means[j])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, ErrDecomposition
	}

	// VTo yields V itself, Dimensions x min(n, Dimensions), with the
	// right singular vectors in its columns. The first two columns are
	// the principal components.
	var v mat.Dense
	svd.VTo(&v)
	_, cols := v.Dims()
	if cols < 2 {
		return nil, ErrInsufficientData
	}

	components := mat.NewDense(feature.Dimensions, 2, nil)
	for j := 0; j < feature.Dimensions; j++ {
		components.Set(j, 0, v.At(j, 0))
		components.Set(j, 1, v.At(j, 1))
	}

	return &Projection{means: means, components: components}, nil
}

// Transform projects vectors into the fitted space. Any vector set may
// be transformed, not just the reference set the basis was fitted on.
func (p *Projection) Transform(vectors []feature.Vector) []Point {
	points := make([]Point, len(vectors))
	for i, v := range vectors {
		var x, y float64
		for j := 0; j < feature.Dimensions; j++ {
			centered := v[j] - p.means[j]
			x += centered * p.components.At(j, 0)
			y += centered * p.components.At(j, 1)
		}
		points[i] = Point{X: x, Y: y}
	}
	return points
}
