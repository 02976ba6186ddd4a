package locations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapitest"
	"golang.org/x/net/html"
)

type mapCache map[string][]byte

func (c mapCache) Set(endpoint string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c[endpoint] = b
	return nil
}

func (c mapCache) Get(endpoint string, value any) (bool, error) {
	b, ok := c[endpoint]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, value)
}

func TestLookup(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	s := NewScraper(srv.LocationsURL(), *srv.Client(), nil, nil)

	got, err := s.Lookup(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := []string{"Viridian Forest", "Power Plant"}
	for _, version := range []string{"red", "blue"} {
		if !slices.Equal(got[version], want) {
			t.Errorf("%s: expected %v, got %v", version, want, got[version])
		}
	}
	yellow, ok := got["yellow"]
	if !ok {
		t.Fatal("expected yellow to be listed")
	}
	if len(yellow) != 0 {
		t.Errorf("expected no yellow locations, got %v", yellow)
	}
	if !slices.Equal(got["shield"], []string{"Route 4"}) {
		t.Errorf("expected shield Route 4, got %v", got["shield"])
	}
}

func TestLookupMissingPage(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	s := NewScraper(srv.LocationsURL(), *srv.Client(), nil, nil)

	got, err := s.Lookup(context.Background(), "missingno")
	if err == nil {
		t.Fatalf("expected error, got %v", got)
	}
}

func TestLookupPageWithoutTable(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	s := NewScraper(srv.LocationsURL(), *srv.Client(), nil, nil)

	_, err := s.Lookup(context.Background(), "ghostmon")
	if !errors.Is(err, ErrNoLocationTable) {
		t.Fatalf("expected ErrNoLocationTable, got %v", err)
	}
}

func TestLookupUsesCache(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	cache := mapCache{}
	s := NewScraper(srv.LocationsURL(), *srv.Client(), cache, nil)

	for i := 0; i < 3; i++ {
		if _, err := s.Lookup(context.Background(), "pikachu"); err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
	}
	if hits := srv.PageHits("pikachu"); hits != 1 {
		t.Errorf("expected 1 page request, got %d", hits)
	}
}

func TestParseSkipsRowsWithoutCells(t *testing.T) {
	page := `<div id="dex-locations"></div>
<table>
<tr><td>stray</td></tr>
<tr><th><span>Let's Go Pikachu</span><span>Legends: Arceus</span><span>Mystery Version</span></th><td><a>Route 1</a></td></tr>
</table>`
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	got, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 versions, got %v", got)
	}
	for _, version := range []string{"lets-go-pikachu", "legends-arceus", "mystery-version"} {
		if !slices.Equal(got[version], []string{"Route 1"}) {
			t.Errorf("%s: expected [Route 1], got %v", version, got[version])
		}
	}
}

func TestVersionName(t *testing.T) {
	tests := []struct {
		label string
		want  string
		known bool
	}{
		{"Red", "red", true},
		{"Black 2", "black-2", true},
		{" Ultra Moon ", "ultra-moon", true},
		{"Pokémon Stadium", "pokémon-stadium", false},
	}
	for _, tt := range tests {
		got, known := VersionName(tt.label)
		if got != tt.want || known != tt.known {
			t.Errorf("VersionName(%q) = %q, %v; want %q, %v", tt.label, got, known, tt.want, tt.known)
		}
	}
}

func TestLookupRespectsContext(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	s := NewScraper(srv.LocationsURL(), http.Client{}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Lookup(ctx, "pikachu"); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}
