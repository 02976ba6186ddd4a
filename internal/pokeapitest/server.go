// Package pokeapitest serves canned PokeAPI payloads and pokemondb location
// pages from an in-process HTTP server.
package pokeapitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

const (
	apiPrefix       = "/api/v2/"
	locationsPrefix = "/pokedex/"
)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	hits     map[string]int
	failures map[string]int
	payloads map[string]string
	pages    map[string]string
}

// NewServer starts a server preloaded with the fixtures of this package. It is
// closed when the test ends.
func NewServer(tb testing.TB) *Server {
	tb.Helper()
	s := &Server{
		hits:     make(map[string]int),
		failures: make(map[string]int),
		payloads: make(map[string]string),
		pages:    make(map[string]string),
	}
	for _, f := range fixtures {
		s.payloads[f.endpoint+"/"+strconv.Itoa(f.id)] = f.body
		s.payloads[f.endpoint+"/"+f.name] = f.body
	}
	for name, page := range locationPages {
		s.pages[name] = page
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	tb.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	status, failing := s.failures[r.URL.Path]
	s.mu.Unlock()

	if failing {
		w.WriteHeader(status)
		return
	}

	switch {
	case strings.HasPrefix(r.URL.Path, apiPrefix):
		body, ok := s.payloads[strings.TrimPrefix(r.URL.Path, apiPrefix)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	case strings.HasPrefix(r.URL.Path, locationsPrefix):
		page, ok := s.pages[strings.TrimPrefix(r.URL.Path, locationsPrefix)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) APIURL() string {
	return s.URL + apiPrefix
}

func (s *Server) LocationsURL() string {
	return s.URL + locationsPrefix
}

// NewClient returns an uncached PokeAPI client pointed at the server.
func (s *Server) NewClient() *pokeapi.Client {
	return pokeapi.NewClient(nil, *s.Client(), pokeapi.WithBaseURL(s.APIURL()))
}

// Fail makes the server answer status for an API path such as "ability/static".
func (s *Server) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[apiPrefix+path] = status
}

// Hits counts requests to an API path such as "pokemon/25".
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[apiPrefix+path]
}

// PageHits counts requests for the location page of a pokemon.
func (s *Server) PageHits(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[locationsPrefix+name]
}

// Total counts every request served.
func (s *Server) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits = make(map[string]int)
}
