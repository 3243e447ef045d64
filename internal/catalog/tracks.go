package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"
)

// maxSearchResults is the largest page size the search endpoint allows.
const maxSearchResults = 50

// SearchTracks searches the catalog for tracks matching the query.
// Artists are joined by ", ".
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	if limit <= 0 || limit > maxSearchResults {
		limit = maxSearchResults
	}

	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching tracks: %w", err)
	}
	if result.Tracks == nil {
		return nil, nil
	}

	tracks := make([]Track, 0, len(result.Tracks.Tracks))
	for _, t := range result.Tracks.Tracks {
		tracks = append(tracks, convertTrack(t))
	}
	return tracks, nil
}

// convertTrack converts a Spotify FullTrack to a catalog Track.
func convertTrack(t spotify.FullTrack) Track {
	artists := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		artists[i] = a.Name
	}

	track := Track{
		ID:         t.ID.String(),
		Title:      t.Name,
		Artist:     strings.Join(artists, ", "),
		Album:      t.Album.Name,
		PreviewURL: t.PreviewURL,
		DurationMs: int(t.Duration),
		Popularity: int(t.Popularity),
	}
	if url, ok := t.ExternalURLs["spotify"]; ok {
		track.ExternalURL = url
	}
	if len(t.Album.Images) > 0 {
		track.ImageURL = t.Album.Images[0].URL
	}
	return track
}
