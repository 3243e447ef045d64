package catalog

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/musicmatch/music-match/internal/feature"
)

// maxTracksPerRequest is the audio features endpoint batch limit.
const maxTracksPerRequest = 100

// pitchNames maps the catalog's pitch class integers to note names.
var pitchNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Features retrieves audio descriptors for the given track ids,
// batching requests to max 100 tracks per request per API limits.
// Ids without available analysis are absent from the returned map.
func (c *Client) Features(ctx context.Context, ids []string) (map[string]feature.RawFeatures, error) {
	out := make(map[string]feature.RawFeatures, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	spotifyIDs := make([]spotify.ID, len(ids))
	for i, id := range ids {
		spotifyIDs[i] = spotify.ID(id)
	}

	total := len(spotifyIDs)
	for i := 0; i < total; i += maxTracksPerRequest {
		end := min(i+maxTracksPerRequest, total)
		batch := spotifyIDs[i:end]

		features, err := c.api.GetAudioFeatures(ctx, batch...)
		if err != nil {
			return nil, fmt.Errorf("fetching audio features (batch %d-%d): %w", i+1, end, err)
		}

		for _, f := range features {
			if f == nil {
				continue // track has no audio features
			}
			out[f.ID.String()] = convertAudioFeatures(f)
		}
	}
	return out, nil
}

// convertAudioFeatures maps API analysis fields to raw descriptors.
func convertAudioFeatures(f *spotify.AudioFeatures) feature.RawFeatures {
	key := ""
	if f.Key >= 0 && int(f.Key) < len(pitchNames) {
		key = pitchNames[f.Key]
	}
	scale := "minor"
	if f.Mode == 1 {
		scale = "major"
	}
	return feature.RawFeatures{
		BPM:              float64(f.Tempo),
		Key:              key,
		Scale:            scale,
		Energy:           float64(f.Energy),
		Danceability:     float64(f.Danceability),
		Acousticness:     float64(f.Acousticness),
		Valence:          float64(f.Valence),
		Instrumentalness: float64(f.Instrumentalness),
		LoudnessDB:       float64(f.Loudness),
	}
}
