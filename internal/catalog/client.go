// Package catalog provides a wrapper around the Spotify Web API for
// track metadata and audio analysis lookups.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrMissingCredentials is returned when SPOTIFY_ID or SPOTIFY_SECRET is not set.
var ErrMissingCredentials = errors.New("missing SPOTIFY_ID or SPOTIFY_SECRET environment variable")

// Client wraps the Spotify API client with convenience methods.
// It uses the client credentials flow, so only app-level endpoints
// (search, track lookup, audio features) are available.
type Client struct {
	api *spotify.Client
}

// New creates a catalog client wrapper.
// The underlying client should already be authenticated.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// NewFromEnv creates a client from SPOTIFY_ID and SPOTIFY_SECRET
// environment variables. Returns ErrMissingCredentials if either
// variable is not set.
func NewFromEnv(ctx context.Context) (*Client, error) {
	clientID := os.Getenv("SPOTIFY_ID")
	clientSecret := os.Getenv("SPOTIFY_SECRET")

	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	// Validate the credentials eagerly so a typo fails at startup, not
	// on the first request.
	if _, err := config.Token(ctx); err != nil {
		return nil, fmt.Errorf("requesting access token: %w", err)
	}

	// config.Client refreshes the token transparently when it expires.
	httpClient := config.Client(ctx)
	return New(spotify.New(httpClient, spotify.WithRetry(true))), nil
}

// Track is catalog metadata for one track.
type Track struct {
	ID          string
	Title       string
	Artist      string
	Album       string
	PreviewURL  string
	ExternalURL string
	ImageURL    string
	DurationMs  int
	Popularity  int
}
