package training

import (
	"fmt"
	"strings"

	"github.com/musicmatch/music-match/internal/feature"
)

// Summary renders a training result as human-readable text for CLI
// output.
func Summary(result *TrainResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trained %d clusters over %d songs (silhouette %.3f)\n",
		result.K, result.SongCount, result.Silhouette)

	for _, c := range result.Clusters {
		fmt.Fprintf(&b, "\n%s Cluster %d: %s\n", c.Emoji, c.ID, c.Description)
		fmt.Fprintf(&b, "   %d songs\n", c.SongCount)
		fmt.Fprintf(&b, "   %s\n", formatCentroid(c.Centroid))
	}

	return b.String()
}

// formatCentroid renders a centroid's dimensions as "Label 0.42" pairs.
func formatCentroid(c feature.Vector) string {
	parts := make([]string, feature.Dimensions)
	for i, key := range feature.Keys {
		parts[i] = fmt.Sprintf("%s %.2f", feature.DisplayNames[key], c[i])
	}
	return strings.Join(parts, ", ")
}
