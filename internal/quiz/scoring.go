package quiz

import (
	"math"

	"github.com/musicmatch/music-match/internal/feature"
)

// Answer pairs a question id with the chosen option id.
type Answer struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

// Score converts quiz answers into a feature vector. Each dimension is
// the mean of the weights contributed by the chosen options; dimensions
// no answer touched sit at the midpoint. Unknown question or option ids
// are skipped rather than rejected, so a stale client still gets a
// usable profile from the answers that do resolve.
func Score(answers []Answer) feature.Vector {
	var sums, counts [feature.Dimensions]float64

	for _, a := range answers {
		q, ok := QuestionByID(a.QuestionID)
		if !ok {
			continue
		}
		var opt *Option
		for i := range q.Options {
			if q.Options[i].ID == a.OptionID {
				opt = &q.Options[i]
				break
			}
		}
		if opt == nil {
			continue
		}
		for key, weight := range opt.Weights {
			for dim, name := range feature.Keys {
				if name == key {
					sums[dim] += weight
					counts[dim]++
					break
				}
			}
		}
	}

	var v feature.Vector
	for dim := range v {
		if counts[dim] > 0 {
			v[dim] = sums[dim] / counts[dim]
		} else {
			v[dim] = feature.Midpoint
		}
	}
	return v.Clamped()
}

// RadarPoint is one axis of the profile radar chart, scaled to 0-100
// for display.
type RadarPoint struct {
	Feature  string  `json:"feature"`
	Value    float64 `json:"value"`
	FullMark float64 `json:"fullMark"`
}

// RadarChart renders a feature vector as radar chart axes in dimension
// order, with values scaled to percentages and rounded to one decimal.
func RadarChart(v feature.Vector) []RadarPoint {
	points := make([]RadarPoint, feature.Dimensions)
	for dim, key := range feature.Keys {
		points[dim] = RadarPoint{
			Feature:  feature.DisplayNames[key],
			Value:    math.Round(v[dim]*1000) / 10,
			FullMark: 100,
		}
	}
	return points
}
