package web

import (
	"math"
	"time"

	"github.com/musicmatch/music-match/internal/db"
	"github.com/musicmatch/music-match/internal/matching"
	"github.com/musicmatch/music-match/internal/quiz"
)

// round3 rounds API-facing scores and distances to three decimals.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// songView is the wire shape of a song.
type songView struct {
	ID               int        `json:"id"`
	SpotifyID        *string    `json:"spotify_id"`
	Title            string     `json:"title"`
	Artist           string     `json:"artist"`
	Album            *string    `json:"album"`
	PreviewURL       *string    `json:"preview_url"`
	ExternalURL      *string    `json:"external_url"`
	ImageURL         *string    `json:"image_url"`
	DurationMs       *int       `json:"duration_ms"`
	Popularity       int        `json:"popularity"`
	BPM              float64    `json:"bpm"`
	Key              string     `json:"key"`
	Scale            string     `json:"scale"`
	Energy           float64    `json:"energy"`
	Danceability     float64    `json:"danceability"`
	Acousticness     float64    `json:"acousticness"`
	Valence          float64    `json:"valence"`
	Instrumentalness float64    `json:"instrumentalness"`
	Loudness         float64    `json:"loudness"`
	ClusterID        *int       `json:"cluster_id"`
	CreatedAt        *time.Time `json:"created_at"`

	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

func newSongView(s db.Song) songView {
	view := songView{
		ID:               s.ID,
		SpotifyID:        s.SpotifyID,
		Title:            s.Title,
		Artist:           s.Artist,
		Album:            s.Album,
		PreviewURL:       s.PreviewURL,
		ExternalURL:      s.ExternalURL,
		ImageURL:         s.ImageURL,
		DurationMs:       s.DurationMs,
		Popularity:       s.Popularity,
		BPM:              s.BPM,
		Key:              s.Key,
		Scale:            s.Scale,
		Energy:           s.Energy,
		Danceability:     s.Danceability,
		Acousticness:     s.Acousticness,
		Valence:          s.Valence,
		Instrumentalness: s.Instrumentalness,
		Loudness:         s.Loudness,
		ClusterID:        s.ClusterID,
	}
	if !s.CreatedAt.IsZero() {
		created := s.CreatedAt
		view.CreatedAt = &created
	}
	return view
}

func newSongViews(songs []db.Song) []songView {
	views := make([]songView, len(songs))
	for i, s := range songs {
		views[i] = newSongView(s)
	}
	return views
}

func newRankedSongViews(ranked []matching.RankedSong) []songView {
	views := make([]songView, len(ranked))
	for i, r := range ranked {
		views[i] = newSongView(r.Song)
		score := round3(r.Score)
		views[i].SimilarityScore = &score
	}
	return views
}

// clusterView is the wire shape of a cluster.
type clusterView struct {
	ID          int                `json:"id"`
	Centroid    map[string]float64 `json:"centroid"`
	Description string             `json:"description"`
	Emoji       string             `json:"emoji"`
	SongCount   int                `json:"song_count"`
}

// clusterWithSamples adds a preview sample to a cluster view.
type clusterWithSamples struct {
	clusterView
	SampleSongs []songView `json:"sample_songs"`
}

// clusterDetailView adds the full member list to a cluster view.
type clusterDetailView struct {
	clusterView
	Songs []songView `json:"songs"`
}

// matchedClusterView adds the match distance and a preview sample.
type matchedClusterView struct {
	clusterView
	Distance    float64    `json:"distance"`
	SampleSongs []songView `json:"sample_songs"`
}

func newClusterView(c db.Cluster) clusterView {
	return clusterView{
		ID:          c.ID,
		Centroid:    c.Centroid.ToMap(),
		Description: c.Description,
		Emoji:       c.Emoji,
		SongCount:   c.SongCount,
	}
}

// questionView is the wire shape of a quiz question, stripped of the
// scoring weights so clients cannot game the quiz.
type questionView struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Options  []optionView `json:"options"`
}

type optionView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func newQuestionViews() []questionView {
	views := make([]questionView, len(quiz.Questions))
	for i, q := range quiz.Questions {
		options := make([]optionView, len(q.Options))
		for j, o := range q.Options {
			options[j] = optionView{ID: o.ID, Text: o.Text}
		}
		views[i] = questionView{ID: q.ID, Question: q.Text, Options: options}
	}
	return views
}
