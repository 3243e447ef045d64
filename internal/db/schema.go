package db

// schemaStatements creates the Music Match tables. Clusters are
// replaced wholesale by each training run; the foreign keys on songs
// and user_profiles unassign rather than cascade, so deleting a
// cluster never deletes its songs.
var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS clusters (
		id SERIAL PRIMARY KEY,
		bpm_normalized DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		energy DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		danceability DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		acousticness DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		valence DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		instrumentalness DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		loudness DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		description TEXT NOT NULL DEFAULT '',
		emoji TEXT NOT NULL DEFAULT '',
		song_count INTEGER NOT NULL DEFAULT 0
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS songs (
		id SERIAL PRIMARY KEY,
		spotify_id TEXT UNIQUE,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		album TEXT,
		preview_url TEXT,
		external_url TEXT,
		image_url TEXT,
		duration_ms INTEGER,
		popularity INTEGER NOT NULL DEFAULT 0,
		bpm DOUBLE PRECISION NOT NULL DEFAULT 0,
		key TEXT NOT NULL DEFAULT '',
		scale TEXT NOT NULL DEFAULT '',
		energy DOUBLE PRECISION NOT NULL DEFAULT 0,
		danceability DOUBLE PRECISION NOT NULL DEFAULT 0,
		acousticness DOUBLE PRECISION NOT NULL DEFAULT 0,
		valence DOUBLE PRECISION NOT NULL DEFAULT 0,
		instrumentalness DOUBLE PRECISION NOT NULL DEFAULT 0,
		loudness DOUBLE PRECISION NOT NULL DEFAULT 0,
		cluster_id INTEGER REFERENCES clusters (id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`,
	`
	CREATE INDEX IF NOT EXISTS songs_cluster_id_idx ON songs (cluster_id)
	`,
	`
	CREATE TABLE IF NOT EXISTS user_profiles (
		id UUID PRIMARY KEY,
		bpm_normalized DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		energy DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		danceability DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		acousticness DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		valence DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		instrumentalness DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		loudness DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		matched_cluster_id INTEGER REFERENCES clusters (id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`,
}
