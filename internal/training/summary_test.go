package training

import (
	"strings"
	"testing"

	"github.com/musicmatch/music-match/internal/db"
	"github.com/musicmatch/music-match/internal/feature"
)

func TestSummary(t *testing.T) {
	result := &TrainResult{
		K:          2,
		Silhouette: 0.612,
		SongCount:  10,
		Clusters: []db.Cluster{
			{
				ID:          1,
				Centroid:    feature.Vector{0.8, 0.9, 0.8, 0.1, 0.7, 0.2, 0.7},
				Description: "Upbeat party anthems - energetic, danceable, and feel-good tracks",
				Emoji:       "🔥",
				SongCount:   6,
			},
			{
				ID:          2,
				Centroid:    feature.Vector{0.3, 0.2, 0.3, 0.8, 0.4, 0.3, 0.3},
				Description: "Melancholic acoustic - introspective, stripped-back emotional pieces",
				Emoji:       "🎸",
				SongCount:   4,
			},
		},
	}

	out := Summary(result)

	for _, want := range []string{
		"Trained 2 clusters over 10 songs (silhouette 0.612)",
		"🔥 Cluster 1: Upbeat party anthems",
		"6 songs",
		"🎸 Cluster 2: Melancholic acoustic",
		"4 songs",
		"Energy 0.90",
		"Acoustic 0.80",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() missing %q in:\n%s", want, out)
		}
	}
}
