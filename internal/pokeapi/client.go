// Package pokeapi provides the read-only PokéAPI client. API access is
// isolated here so the view-model mapper and the TUI stay free of transport
// concerns.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dexcard/dexcard/internal/logger"
	apperrors "github.com/dexcard/dexcard/pkg/errors"
)

// DefaultBaseURL is the public PokéAPI v2 endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

const defaultTimeout = 10 * time.Second

// Client fetches pokemon and move resources over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, primarily for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithHTTPClient injects a pre-configured HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client with sane defaults.
func NewClient(log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPokemon retrieves the raw record for a canonical name. A 404 maps to
// NotFoundError; every other failure maps to UnavailableError. Cancelling ctx
// aborts the request, which is how superseded searches are discarded.
func (c *Client) FetchPokemon(ctx context.Context, name string) (*RawPokemon, error) {
	var raw RawPokemon
	if err := c.getJSON(ctx, "/pokemon/"+url.PathEscape(name), name, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// FetchMoveDetail retrieves the damage class and type for a move. It is
// best-effort: any failure yields the zero MoveDetail and no error, so a
// missing detail never surfaces in the UI.
func (c *Client) FetchMoveDetail(ctx context.Context, moveName string) MoveDetail {
	var raw rawMoveDetail
	if err := c.getJSON(ctx, "/move/"+url.PathEscape(moveName), moveName, &raw); err != nil {
		c.log.WithFields(map[string]any{"move": moveName}).Debug("move detail lookup failed")
		return MoveDetail{}
	}
	return MoveDetail{
		DamageClass: raw.DamageClass.Name,
		Type:        raw.Type.Name,
	}
}

func (c *Client) getJSON(ctx context.Context, path, name string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperrors.NewUnavailableError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Cancellation is not an availability problem; let the caller's
		// generation check discard the result.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return apperrors.NewUnavailableError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NewNotFoundError(name)
	case resp.StatusCode != http.StatusOK:
		return apperrors.NewUnavailableError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewUnavailableError(err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewUnavailableError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
