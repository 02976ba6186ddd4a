package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	papi "github.com/nerdwave-nick/pokeapi-go"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2/"

// Cache is the response cache contract shared with pokeapi-go:
// Set stores a structure, Get unmarshals into value and reports whether something was found.
type Cache = papi.Cache

type Client struct {
	baseURL string
	cache   Cache
	client  http.Client
	limiter *rate.Limiter
}

type Option func(*Client)

// WithBaseURL points the client at another PokeAPI compatible host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		c.baseURL = u
	}
}

// WithLimiter throttles outbound requests. Cache hits are not throttled.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a client. A nil cache disables response caching.
func NewClient(cache Cache, client http.Client, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		cache:   cache,
		client:  client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches endpoint/idOrName and decodes it into a T. idOrName is escaped
// as a single path segment.
// A 404 yields ErrNotFound, every other failure a *TransportError.
func Get[T any](ctx context.Context, c *Client, endpoint string, idOrName string) (*T, error) {
	key := endpoint + "/" + url.PathEscape(idOrName)
	value := new(T)
	if c.cache != nil {
		found, err := c.cache.Get(key, value)
		if err != nil {
			slog.Warn("reading response cache", slog.String("endpoint", key), slog.Any("error", err))
		} else if found {
			return value, nil
		}
	}

	body, err := c.do(ctx, key)
	if err != nil {
		return nil, err
	}

	v := new(T)
	if err := json.Unmarshal(body, v); err != nil {
		return nil, &TransportError{Endpoint: key, Status: http.StatusOK, Err: fmt.Errorf("decoding payload: %w", err)}
	}

	if c.cache != nil {
		if err := c.cache.Set(key, v); err != nil {
			slog.Warn("writing response cache", slog.String("endpoint", key), slog.Any("error", err))
		}
	}
	return v, nil
}

func (c *Client) do(ctx context.Context, key string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Endpoint: key, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+key, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: key, Err: err}
	}
	slog.Debug("requesting pokeapi", slog.String("url", req.URL.String()))
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: key, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, &TransportError{Endpoint: key, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: key, Status: resp.StatusCode, Err: err}
	}
	return body, nil
}
