package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/nerdwave-nick/pokewrap/internal/locations"
	"github.com/nerdwave-nick/pokewrap/internal/pokeapitest"
	"github.com/nerdwave-nick/pokewrap/internal/render"
	"github.com/nerdwave-nick/pokewrap/internal/resource"
)

func validOptions() *RootOptions {
	return &RootOptions{
		LogLevel:     "info",
		CacheDir:     ".pokewrap",
		BaseURL:      "http://localhost/api/v2/",
		LocationsURL: "http://localhost/pokedex/",
		Timeout:      10,
		Rate:         5,
		L1CacheSize:  10,
		L1CacheTTL:   10,
		L2CacheTTL:   10,
		GCInterval:   10,
	}
}

func TestValidate(t *testing.T) {
	if err := validOptions().Validate(); err != nil {
		t.Fatalf("expected valid options, got %v", err)
	}

	o := validOptions()
	o.CacheDir = ""
	o.Rate = 0
	err := o.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"cache-dir", "rate"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("POKEWRAP_CACHE_DIR", "/tmp/from-env")
	t.Setenv("POKEWRAP_RATE", "2.5")
	t.Setenv("POKEWRAP_TIMEOUT", "3")

	o := validOptions()
	changed := func(flag string) bool { return flag == "timeout" }
	if err := o.applyEnv(changed); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if o.CacheDir != "/tmp/from-env" {
		t.Errorf("expected cache dir from env, got %q", o.CacheDir)
	}
	if o.Rate != 2.5 {
		t.Errorf("expected rate 2.5, got %v", o.Rate)
	}
	if o.Timeout != 10 {
		t.Errorf("expected the timeout flag to win, got %d", o.Timeout)
	}
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	t.Setenv("POKEWRAP_TIMEOUT", "soon")
	if err := validOptions().applyEnv(func(string) bool { return false }); err == nil {
		t.Fatal("expected an error for a non numeric timeout")
	}
}

func newTestSession(t *testing.T) (*session, *pokeapitest.Server) {
	t.Helper()
	srv := pokeapitest.NewServer(t)
	scraper := locations.NewScraper(srv.LocationsURL(), *srv.Client(), nil, nil)
	reg, err := resource.NewRegistry(srv.NewClient(), scraper)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return newSession(reg, render.NewRenderer(reg)), srv
}

func TestSessionSearch(t *testing.T) {
	s, _ := newTestSession(t)
	var out strings.Builder
	if err := s.search(context.Background(), &out, resource.KindAbility, "Static"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out.String(), "Static") {
		t.Errorf("expected the static report, got:\n%s", out.String())
	}

	out.Reset()
	if err := s.search(context.Background(), &out, resource.KindPokemon, "missingno"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out.String(), "Nothing found") {
		t.Errorf("expected a not found message, got:\n%s", out.String())
	}
}

func TestInteractive(t *testing.T) {
	s, srv := newTestSession(t)
	input := strings.Join([]string{
		"nonsense",
		"s",
		"1",
		"pikachu",
		"ability",
		"31",
		"quit",
		"pokemon",
		"ghostmon",
	}, "\n")

	var out strings.Builder
	if err := s.interactive(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("interactive: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Not a valid search!",
		"[s]tats:off",
		"Pokemon Name or ID: ",
		"Pikachu (#25)",
		"Ability Name or ID: ",
		"Lightning Rod",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "EV Yield") {
		t.Error("stats were toggled off but rendered")
	}
	if srv.Hits("pokemon/ghostmon") != 0 {
		t.Error("input after quit was processed")
	}
}

func TestInteractiveEndsWithInput(t *testing.T) {
	s, _ := newTestSession(t)
	var out strings.Builder
	if err := s.interactive(context.Background(), strings.NewReader("type\n"), &out); err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Type Name or ID: ") {
		t.Errorf("expected to stop at the query prompt, got:\n%s", out.String())
	}
}

func TestInteractiveCancelled(t *testing.T) {
	s, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.interactive(ctx, strings.NewReader("pokemon\npikachu\n"), &strings.Builder{})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSessionSearchMultiWordQuery(t *testing.T) {
	s, srv := newTestSession(t)
	var out strings.Builder
	if err := s.search(context.Background(), &out, resource.KindAbility, strings.Join([]string{"Lightning", "Rod"}, " ")); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out.String(), "Lightning Rod") {
		t.Errorf("expected the lightning rod report, got:\n%s", out.String())
	}
	if srv.Hits("ability/lightning-rod") != 1 {
		t.Errorf("expected one request for ability/lightning-rod, got %d", srv.Hits("ability/lightning-rod"))
	}
}
