// Package locations scrapes pokemondb.net for where a pokemon can be caught in each game.
package locations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://pokemondb.net/pokedex/"
	locationsID    = "dex-locations"
	cachePrefix    = "pokemondb/"
)

var ErrNoLocationTable = errors.New("no location table on page")

type Scraper struct {
	baseURL string
	client  http.Client
	cache   pokeapi.Cache
	limiter *rate.Limiter
}

// NewScraper creates a scraper. cache and limiter may be nil.
func NewScraper(baseURL string, client http.Client, cache pokeapi.Cache, limiter *rate.Limiter) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Scraper{baseURL: baseURL, client: client, cache: cache, limiter: limiter}
}

// Lookup returns version name -> location names for a pokemon. A version whose
// list is empty is known to the page but has no wild location.
func (s *Scraper) Lookup(ctx context.Context, name string) (map[string][]string, error) {
	key := cachePrefix + name
	if s.cache != nil {
		var cached map[string][]string
		found, err := s.cache.Get(key, &cached)
		if err == nil && found {
			return cached, nil
		}
	}

	doc, err := s.fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	encounters, err := Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing locations of %q: %w", name, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(key, encounters); err != nil {
			slog.Warn("caching locations", slog.String("pokemon", name), slog.Any("error", err))
		}
	}
	return encounters, nil
}

func (s *Scraper) fetch(ctx context.Context, name string) (*html.Node, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("location page of %q: unexpected status %d", name, resp.StatusCode)
	}
	return html.Parse(resp.Body)
}

// Parse extracts the encounter table that follows the element with id
// "dex-locations". Each row maps the game labels of its header cell to the
// links of its data cell.
func Parse(doc *html.Node) (map[string][]string, error) {
	table := tableAfterLocations(doc)
	if table == nil {
		return nil, ErrNoLocationTable
	}

	encounters := make(map[string][]string)
	for _, row := range findAll(table, atom.Tr) {
		th := findFirst(row, atom.Th)
		td := findFirst(row, atom.Td)
		if th == nil || td == nil {
			continue
		}
		locations := []string{}
		for _, a := range findAll(td, atom.A) {
			if text := textOf(a); text != "" {
				locations = append(locations, text)
			}
		}
		for _, span := range findAll(th, atom.Span) {
			label := textOf(span)
			if label == "" {
				continue
			}
			version, known := VersionName(label)
			if !known {
				slog.Debug("unknown game label", slog.String("label", label), slog.String("version", version))
			}
			encounters[version] = locations
		}
	}
	return encounters, nil
}

// tableAfterLocations walks the document in order and returns the first table
// starting at or after the dex-locations marker.
func tableAfterLocations(doc *html.Node) *html.Node {
	seen := false
	var table *html.Node
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if !seen && attr(n, "id") == locationsID {
				seen = true
			}
			if seen && n.DataAtom == atom.Table {
				table = n
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return table
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var nodes []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			nodes = append(nodes, c)
		}
		nodes = append(nodes, findAll(c, a)...)
	}
	return nodes
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
