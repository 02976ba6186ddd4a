package resource

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/nerdwave-nick/pokewrap/internal/locations"
	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
	"github.com/nerdwave-nick/pokewrap/internal/pokeapitest"
)

func newTestRegistry(t *testing.T, srv *pokeapitest.Server) *Registry {
	t.Helper()
	scraper := locations.NewScraper(srv.LocationsURL(), *srv.Client(), nil, nil)
	r, err := NewRegistry(srv.NewClient(), scraper)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return r
}

func TestSearchPokemonEndToEnd(t *testing.T) {
	ctx := context.Background()
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	p, found, err := r.Pokemon.HandleSearch(ctx, "25")
	if err != nil || !found {
		t.Fatalf("search: found=%v err=%v", found, err)
	}
	if p.Name != "pikachu" {
		t.Errorf("expected pikachu, got %q", p.Name)
	}
	if !slices.Equal(p.Types, []string{"electric"}) {
		t.Errorf("expected [electric], got %v", p.Types)
	}
	if p.BaseStats["speed"] != 90 {
		t.Errorf("expected speed 90, got %d", p.BaseStats["speed"])
	}
	if p.EVYield["speed"] != 2 {
		t.Errorf("expected speed EV 2, got %d", p.EVYield["speed"])
	}
	if p.TotalBaseStats() != 320 {
		t.Errorf("expected total 320, got %d", p.TotalBaseStats())
	}
	if !slices.Equal(p.Abilities, []int{9}) {
		t.Errorf("expected possible abilities [9], got %v", p.Abilities)
	}
	if p.HiddenAbility != 31 {
		t.Errorf("expected hidden ability 31, got %d", p.HiddenAbility)
	}
	if p.SpeciesID != 25 {
		t.Errorf("expected species 25, got %d", p.SpeciesID)
	}
	if p.ShinyArtwork == "" {
		t.Error("expected shiny artwork url")
	}
	if !slices.Equal(p.Locations["red"], []string{"Viridian Forest", "Power Plant"}) {
		t.Errorf("unexpected red locations %v", p.Locations["red"])
	}

	static, found, _ := r.Ability.HandleSearch(ctx, "static")
	if !found || static.Description == "" {
		t.Errorf("expected static with description, got %+v", static)
	}

	// nested resolution filled the dependent stores
	for _, q := range []struct {
		kind  Kind
		query string
	}{
		{KindSpecies, "pikachu"},
		{KindGeneration, "generation-i"},
		{KindVersionGroup, "red-blue"},
		{KindVersion, "yellow"},
	} {
		srv.Reset()
		if _, found, err := r.Search(ctx, q.kind, q.query); err != nil || !found {
			t.Errorf("%s %q: found=%v err=%v", q.kind, q.query, found, err)
		}
		if srv.Total() != 0 {
			t.Errorf("%s %q: expected cache hit, got %d requests", q.kind, q.query, srv.Total())
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	ctx := context.Background()
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	first, _, err := r.Search(ctx, KindPokemon, "pikachu")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	srv.Reset()
	for _, q := range []string{"PIKACHU", "25", strconv.Itoa(first.RecordID()), first.RecordName()} {
		rec, found, err := r.Search(ctx, KindPokemon, q)
		if err != nil || !found {
			t.Fatalf("search %q: found=%v err=%v", q, found, err)
		}
		if rec.RecordID() != first.RecordID() {
			t.Errorf("search %q: expected id %d, got %d", q, first.RecordID(), rec.RecordID())
		}
	}
	if srv.Total() != 0 {
		t.Errorf("expected no requests, got %d", srv.Total())
	}
}

func TestSearchAbility(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	rec, found, err := r.Search(context.Background(), KindAbility, "static")
	if err != nil || !found {
		t.Fatalf("search: found=%v err=%v", found, err)
	}
	a := rec.(Ability)
	if a.Name != "static" || a.Description == "" {
		t.Errorf("unexpected ability %+v", a)
	}

	rod, _, _ := r.Ability.HandleSearch(context.Background(), "31")
	if rod.Description != "The Pokémon draws in all Electric-type moves to boost its Sp. Atk stat." {
		t.Errorf("expected latest flavor text fallback, got %q", rod.Description)
	}
}

func TestSearchMoveResolvesType(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	m, found, err := r.Move.HandleSearch(context.Background(), "thunderbolt")
	if err != nil || !found {
		t.Fatalf("search: found=%v err=%v", found, err)
	}
	if m.TypeID != 13 || m.TypeName != "electric" {
		t.Errorf("expected electric type 13, got %q %d", m.TypeName, m.TypeID)
	}
	if m.Description != "Has a 10% chance to paralyze the target." {
		t.Errorf("unexpected description %q", m.Description)
	}
	if m.Power != 90 || m.Accuracy != 100 || m.PP != 15 {
		t.Errorf("unexpected numbers %+v", m)
	}
}

func TestTypeMultiplier(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	ghost, found, err := r.Type.HandleSearch(context.Background(), "ghost")
	if err != nil || !found {
		t.Fatalf("search: found=%v err=%v", found, err)
	}
	tests := map[string]float64{"normal": 0, "poison": 0.5, "dark": 2, "fire": 1}
	for attacking, want := range tests {
		if got := ghost.Multiplier(attacking); got != want {
			t.Errorf("Multiplier(%q) = %v, want %v", attacking, got, want)
		}
	}
}

func TestSpeciesFields(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	s, found, err := r.Species.HandleSearch(context.Background(), "25")
	if err != nil || !found {
		t.Fatalf("search: found=%v err=%v", found, err)
	}
	if s.GenerationID != 1 || s.NationalDex != 25 || s.Genus != "Mouse Pokémon" || s.EvolvesFrom != "pichu" {
		t.Errorf("unexpected species %+v", s)
	}
	if s.FlavorText != "It keeps its tail raised to monitor its surroundings." {
		t.Errorf("unexpected flavor text %q", s.FlavorText)
	}

	g, _, _ := r.Generation.HandleSearch(context.Background(), "1")
	if !slices.Equal(g.VersionGroups, []string{"red-blue", "yellow"}) || g.DisplayName != "Generation I" {
		t.Errorf("unexpected generation %+v", g)
	}
	vg, _, _ := r.VersionGroup.HandleSearch(context.Background(), "red-blue")
	if !slices.Equal(vg.Versions, []string{"red", "blue"}) {
		t.Errorf("unexpected version group %+v", vg)
	}
}

func TestNestedNotFoundLeavesSlotEmpty(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	p, found, err := r.Pokemon.HandleSearch(context.Background(), strconv.Itoa(pokeapitest.GhostmonID))
	if err != nil || !found {
		t.Fatalf("search: found=%v err=%v", found, err)
	}
	if len(p.Abilities) != 0 {
		t.Errorf("expected no possible abilities, got %v", p.Abilities)
	}
	if p.HiddenAbility != 9 {
		t.Errorf("expected hidden static, got %d", p.HiddenAbility)
	}
	if p.SpeciesID != 0 {
		t.Errorf("expected unresolved species, got %d", p.SpeciesID)
	}
	if p.ShinyArtwork != "" {
		t.Errorf("expected no artwork, got %q", p.ShinyArtwork)
	}
	if p.Locations != nil {
		t.Errorf("expected no location data, got %v", p.Locations)
	}
	if !slices.Equal(p.Types, []string{"ghost", "poison"}) {
		t.Errorf("expected [ghost poison], got %v", p.Types)
	}
}

func TestNestedTransportErrorLeavesSlotEmpty(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	srv.Fail("ability/flaky-ability", http.StatusBadGateway)
	r := newTestRegistry(t, srv)

	p, found, err := r.Pokemon.HandleSearch(context.Background(), "flakymon")
	if err != nil || !found {
		t.Fatalf("search: found=%v err=%v", found, err)
	}
	if !slices.Equal(p.Abilities, []int{9}) {
		t.Errorf("expected only static, got %v", p.Abilities)
	}
}

func TestMissingStatIsMalformed(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	_, found, err := r.Search(context.Background(), KindPokemon, "brokemon")
	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %v", err)
	}
	if found {
		t.Error("expected not found on malformed payload")
	}
	if malformed.Field != "stats.speed" {
		t.Errorf("expected stats.speed, got %q", malformed.Field)
	}
	if r.Pokemon.Len() != 0 {
		t.Error("malformed record must not be cached")
	}
}

func TestLastHiddenAbilityWins(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	p, _, err := r.Pokemon.HandleSearch(context.Background(), "doublehidden")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if p.HiddenAbility != 31 {
		t.Errorf("expected lightning-rod (31), got %d", p.HiddenAbility)
	}
}

func TestTopLevelTransportErrorPropagates(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	srv.Fail("pokemon/pikachu", http.StatusServiceUnavailable)
	r := newTestRegistry(t, srv)

	_, found, err := r.Search(context.Background(), KindPokemon, "pikachu")
	if found || !pokeapi.IsTransport(err) {
		t.Fatalf("expected transport error, got found=%v err=%v", found, err)
	}
}

func TestSearchNotFound(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	rec, found, err := r.Search(context.Background(), KindMove, "splashier")
	if err != nil || found || rec != nil {
		t.Fatalf("expected nothing, got %v found=%v err=%v", rec, found, err)
	}
}

func TestCachesRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	want, _, err := r.Pokemon.HandleSearch(ctx, "25")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if _, _, err := r.Move.HandleSearch(ctx, "thunderbolt"); err != nil {
		t.Fatalf("search move: %v", err)
	}
	if err := r.SaveCaches(dir); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := newTestRegistry(t, srv)
	if err := fresh.LoadCaches(dir); err != nil {
		t.Fatalf("load: %v", err)
	}
	srv.Reset()

	got, found, err := fresh.Pokemon.HandleSearch(ctx, "pikachu")
	if err != nil || !found {
		t.Fatalf("search after load: found=%v err=%v", found, err)
	}
	if got.SpeciesID != want.SpeciesID || got.HiddenAbility != want.HiddenAbility ||
		!slices.Equal(got.Abilities, want.Abilities) || !slices.Equal(got.Types, want.Types) ||
		got.BaseStats["speed"] != want.BaseStats["speed"] || got.EVYield["speed"] != want.EVYield["speed"] ||
		got.ShinyArtwork != want.ShinyArtwork || !slices.Equal(got.Locations["blue"], want.Locations["blue"]) {
		t.Errorf("record changed across save/load:\nwant %+v\ngot  %+v", want, got)
	}
	for _, q := range []struct {
		kind  Kind
		query string
	}{
		{KindAbility, "static"}, {KindAbility, "9"}, {KindType, "electric"},
		{KindMove, "85"}, {KindVersion, "red"}, {KindGeneration, "1"},
	} {
		if _, found, err := fresh.Search(ctx, q.kind, q.query); err != nil || !found {
			t.Errorf("%s %q: found=%v err=%v", q.kind, q.query, found, err)
		}
	}
	if srv.Total() != 0 {
		t.Errorf("expected zero remote calls after load, got %d", srv.Total())
	}
	if fresh.Sizes()[KindVersion] != 3 {
		t.Errorf("expected 3 versions, got %d", fresh.Sizes()[KindVersion])
	}
}

func TestNoLocationDataRoundTripsAsNil(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	if _, _, err := r.Pokemon.HandleSearch(ctx, "ghostmon"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if err := r.SaveCaches(dir); err != nil {
		t.Fatalf("save: %v", err)
	}
	fresh := newTestRegistry(t, srv)
	if err := fresh.LoadCaches(dir); err != nil {
		t.Fatalf("load: %v", err)
	}
	p, found, _ := fresh.Pokemon.HandleSearch(ctx, "ghostmon")
	if !found || p.Locations != nil {
		t.Errorf("expected ghostmon without location data, got %+v", p)
	}
}

func TestRegistryWithoutLocationSource(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r, err := NewRegistry(srv.NewClient(), nil)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	p, _, err := r.Pokemon.HandleSearch(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if p.Locations != nil || srv.PageHits("pikachu") != 0 {
		t.Error("expected no location lookup")
	}
}

func TestUndeclaredDependencyIsRefused(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	deps := map[Kind][]Kind{KindPokemon: {KindAbility}}
	r, err := newRegistry(srv.NewClient(), nil, deps)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	p, _, err := r.Pokemon.HandleSearch(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if p.SpeciesID != 0 {
		t.Errorf("expected species left unresolved, got %d", p.SpeciesID)
	}
	if srv.Hits("pokemon-species/pikachu") != 0 {
		t.Error("expected no species request")
	}
}

func TestDependencyCycleIsRejected(t *testing.T) {
	deps := map[Kind][]Kind{
		KindPokemon:    {KindSpecies},
		KindSpecies:    {KindGeneration},
		KindGeneration: {KindPokemon},
	}
	if _, err := newRegistry(nil, nil, deps); err == nil {
		t.Fatal("expected cycle error")
	}
	if err := checkAcyclic(dependencies); err != nil {
		t.Fatalf("default dependencies must be acyclic: %v", err)
	}
}

func TestWarm(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	var calls int
	err := r.Warm(context.Background(), 2, 25, func(Kind, int, int) { calls++ })
	if err != nil {
		t.Fatalf("warm: %v", err)
	}
	if calls != 27 {
		t.Errorf("expected 27 progress calls, got %d", calls)
	}
	sizes := r.Sizes()
	if sizes[KindGeneration] != 1 || sizes[KindPokemon] != 1 {
		t.Errorf("unexpected sizes %v", sizes)
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"pokemon":         KindPokemon,
		"Ability":         KindAbility,
		"TYPE":            KindType,
		"version-group":   KindVersionGroup,
		"VersionGroup":    KindVersionGroup,
		"pokemon-species": KindSpecies,
		"species":         KindSpecies,
		"generation":      KindGeneration,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseKind("berry"); err == nil {
		t.Error("expected error for berry")
	}
}

// cancelAfter cancels a request context once a response for a path with the
// given prefix has been received.
type cancelAfter struct {
	next   http.RoundTripper
	prefix string
	cancel context.CancelFunc
}

func (c *cancelAfter) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := c.next.RoundTrip(req)
	if err == nil && strings.HasPrefix(req.URL.Path, c.prefix) {
		c.cancel()
	}
	return resp, err
}

func TestCancelledSearchIsNotCached(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	transport := &cancelAfter{next: srv.Client().Transport, prefix: "/api/v2/pokemon/", cancel: cancel}
	client := pokeapi.NewClient(nil, http.Client{Transport: transport}, pokeapi.WithBaseURL(srv.APIURL()))
	r, err := NewRegistry(client, nil)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	_, found, err := r.Pokemon.HandleSearch(ctx, "25")
	if found {
		t.Error("expected not found for a cancelled search")
	}
	if !pokeapi.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if r.Pokemon.Len() != 0 {
		t.Fatal("partially resolved record was cached")
	}

	p, found, err := r.Pokemon.HandleSearch(context.Background(), "25")
	if err != nil || !found {
		t.Fatalf("search: found=%v err=%v", found, err)
	}
	if !slices.Equal(p.Abilities, []int{9}) || p.HiddenAbility != 31 || p.SpeciesID != 25 {
		t.Errorf("expected a fully resolved pikachu, got %+v", p)
	}
}

func TestQueryCannotReachAnotherEndpoint(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	r := newTestRegistry(t, srv)

	for _, q := range []string{"../generation/1", "..%2Fgeneration%2F1", "1?x=1"} {
		rec, found, err := r.Search(context.Background(), KindVersion, q)
		if err != nil || found {
			t.Errorf("search %q: expected nothing, got %v found=%v err=%v", q, rec, found, err)
		}
	}
	if srv.Total() != 0 {
		t.Errorf("expected no remote call, got %d", srv.Total())
	}

	v, found, err := r.Version.HandleSearch(context.Background(), "1")
	if err != nil || !found || v.Name != "red" {
		t.Fatalf("expected version red, got %+v found=%v err=%v", v, found, err)
	}
}
