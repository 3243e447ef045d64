package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/musicmatch/music-match/internal/db"
	"github.com/musicmatch/music-match/internal/feature"
	"github.com/musicmatch/music-match/internal/matching"
	"github.com/musicmatch/music-match/internal/projection"
	"github.com/musicmatch/music-match/internal/quiz"
)

// Handlers contains the JSON API handlers.
type Handlers struct {
	db     *db.DB
	engine *matching.Engine
	log    zerolog.Logger
}

// NewHandlers creates a Handlers instance.
func NewHandlers(database *db.DB, engine *matching.Engine, log zerolog.Logger) *Handlers {
	return &Handlers{
		db:     database,
		engine: engine,
		log:    log,
	}
}

// QuizQuestions returns the question bank (GET /api/quiz/questions).
func (h *Handlers) QuizQuestions(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]any{
		"questions": newQuestionViews(),
	})
}

type quizSubmission struct {
	Answers []quiz.Answer `json:"answers"`
}

// SubmitQuiz scores quiz answers, persists the resulting profile, and
// returns the matched cluster with recommendations (POST /api/quiz/submit).
func (h *Handlers) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var submission quizSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vector := quiz.Score(submission.Answers)
	radar := quiz.RadarChart(vector)

	recs, err := h.engine.Recommendations(r.Context(), vector, 0)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	profile := db.UserProfile{Vector: vector}
	if recs.Matched != nil {
		matchedID := recs.Matched.Cluster.ID
		profile.MatchedClusterID = &matchedID
	}
	if err := h.db.Profiles().Create(r.Context(), &profile); err != nil {
		h.serverError(w, r, err)
		return
	}

	var matched *matchedClusterView
	if recs.Matched != nil {
		matched = &matchedClusterView{
			clusterView: newClusterView(recs.Matched.Cluster),
			Distance:    round3(recs.Matched.Distance),
			SampleSongs: newSongViews(recs.Matched.SampleSongs),
		}
	}

	adjacent := make([]clusterWithSamples, len(recs.Adjacent))
	for i, a := range recs.Adjacent {
		adjacent[i] = clusterWithSamples{
			clusterView: newClusterView(a.Cluster),
			SampleSongs: newSongViews(a.SampleSongs),
		}
	}

	h.respond(w, http.StatusOK, map[string]any{
		"user_profile": map[string]any{
			"id":               profile.ID,
			"feature_vector":   vector.ToMap(),
			"radar_chart_data": radar,
		},
		"matched_cluster":   matched,
		"adjacent_clusters": adjacent,
		"songs":             newRankedSongViews(recs.Songs),
	})
}

// Clusters returns every cluster with a preview sample (GET /api/clusters).
func (h *Handlers) Clusters(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.db.Clusters().All(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	views := make([]clusterWithSamples, len(clusters))
	for i, c := range clusters {
		sample, err := h.db.Songs().ByCluster(r.Context(), c.ID, 5)
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		views[i] = clusterWithSamples{
			clusterView: newClusterView(c),
			SampleSongs: newSongViews(sample),
		}
	}

	h.respond(w, http.StatusOK, map[string]any{"clusters": views})
}

type vizSong struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ClusterID *int    `json:"cluster_id"`
}

type vizCentroid struct {
	ClusterID int     `json:"cluster_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// ClusterVisualization projects every song and centroid into a shared
// 2D space for the scatter plot (GET /api/clusters/visualization).
func (h *Handlers) ClusterVisualization(w http.ResponseWriter, r *http.Request) {
	songs, err := h.db.Songs().All(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	clusters, err := h.db.Clusters().All(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	empty := map[string]any{"songs": []vizSong{}, "centroids": []vizCentroid{}}

	vectors := make([]feature.Vector, len(songs))
	for i, s := range songs {
		vectors[i] = s.Vector()
	}

	proj, err := projection.Fit(vectors)
	if errors.Is(err, projection.ErrInsufficientData) {
		h.respond(w, http.StatusOK, empty)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	songPoints := proj.Transform(vectors)
	songViews := make([]vizSong, len(songs))
	for i, s := range songs {
		songViews[i] = vizSong{
			ID:        s.ID,
			Title:     s.Title,
			Artist:    s.Artist,
			X:         round3(songPoints[i].X),
			Y:         round3(songPoints[i].Y),
			ClusterID: s.ClusterID,
		}
	}

	// Centroids share the song-fitted basis so both sets land in the
	// same coordinate system.
	centroids := make([]feature.Vector, len(clusters))
	for i, c := range clusters {
		centroids[i] = c.Centroid
	}
	centroidPoints := proj.Transform(centroids)
	centroidViews := make([]vizCentroid, len(clusters))
	for i, c := range clusters {
		centroidViews[i] = vizCentroid{
			ClusterID: c.ID,
			X:         round3(centroidPoints[i].X),
			Y:         round3(centroidPoints[i].Y),
		}
	}

	h.respond(w, http.StatusOK, map[string]any{
		"songs":     songViews,
		"centroids": centroidViews,
	})
}

// Cluster returns one cluster with all of its songs (GET /api/clusters/{id}).
func (h *Handlers) Cluster(w http.ResponseWriter, r *http.Request) {
	id, ok := h.intParam(w, r, "id")
	if !ok {
		return
	}

	cluster, err := h.db.Clusters().Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "cluster not found")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	songs, err := h.db.Songs().ByCluster(r.Context(), id, 0)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, clusterDetailView{
		clusterView: newClusterView(*cluster),
		Songs:       newSongViews(songs),
	})
}

// Recommendations returns songs from one cluster, personalized when a
// user_vector query parameter is supplied (GET /api/recommendations/{id}).
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := h.intParam(w, r, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	// A malformed user_vector is ignored rather than rejected, matching
	// the quiz's soft handling of bad input.
	var query *feature.Vector
	if raw := r.URL.Query().Get("user_vector"); raw != "" {
		var m map[string]float64
		if err := json.Unmarshal([]byte(raw), &m); err == nil {
			v := feature.FromMap(m)
			query = &v
		}
	}

	ranked, err := h.engine.ClusterRecommendations(r.Context(), id, query, limit)
	if errors.Is(err, db.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "cluster not found")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	var views []songView
	if query != nil {
		views = newRankedSongViews(ranked)
	} else {
		songs := make([]db.Song, len(ranked))
		for i, rs := range ranked {
			songs[i] = rs.Song
		}
		views = newSongViews(songs)
	}

	h.respond(w, http.StatusOK, map[string]any{"songs": views})
}

// Song returns one song by id (GET /api/songs/{id}).
func (h *Handlers) Song(w http.ResponseWriter, r *http.Request) {
	id, ok := h.intParam(w, r, "id")
	if !ok {
		return
	}

	song, err := h.db.Songs().Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "song not found")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, newSongView(*song))
}

// intParam parses a numeric URL parameter, writing a 400 on failure.
func (h *Handlers) intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	val, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return val, true
}

// respond writes a JSON response.
func (h *Handlers) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error().Err(err).Msg("encoding response")
	}
}

// respondError writes a JSON error body.
func (h *Handlers) respondError(w http.ResponseWriter, status int, detail string) {
	h.respond(w, status, map[string]string{"detail": detail})
}

// serverError logs the error and writes a generic 500.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	h.respondError(w, http.StatusInternalServerError, "internal server error")
}
