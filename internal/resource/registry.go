package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

// LocationSource reports, per version name, where a pokemon can be found.
type LocationSource interface {
	Lookup(ctx context.Context, name string) (map[string][]string, error)
}

// Registry owns one store per kind and wires the cross kind resolution between them.
type Registry struct {
	client    *pokeapi.Client
	locations LocationSource
	deps      map[Kind][]Kind

	Pokemon      *Store[Pokemon]
	Ability      *Store[Ability]
	Type         *Store[Type]
	Move         *Store[Move]
	Version      *Store[Version]
	Species      *Store[Species]
	VersionGroup *Store[VersionGroup]
	Generation   *Store[Generation]
}

// NewRegistry builds the stores. locations may be nil, pokemon then carry no location data.
func NewRegistry(client *pokeapi.Client, locations LocationSource) (*Registry, error) {
	return newRegistry(client, locations, dependencies)
}

func newRegistry(client *pokeapi.Client, locations LocationSource, deps map[Kind][]Kind) (*Registry, error) {
	if err := checkAcyclic(deps); err != nil {
		return nil, err
	}
	r := &Registry{
		client:    client,
		locations: locations,
		deps:      deps,
	}
	r.Pokemon = NewStore(KindPokemon, fetcher(r, KindPokemon, r.newPokemon))
	r.Ability = NewStore(KindAbility, fetcher(r, KindAbility, r.newAbility))
	r.Type = NewStore(KindType, fetcher(r, KindType, r.newType))
	r.Move = NewStore(KindMove, fetcher(r, KindMove, r.newMove))
	r.Version = NewStore(KindVersion, fetcher(r, KindVersion, r.newVersion))
	r.Species = NewStore(KindSpecies, fetcher(r, KindSpecies, r.newSpecies))
	r.VersionGroup = NewStore(KindVersionGroup, fetcher(r, KindVersionGroup, r.newVersionGroup))
	r.Generation = NewStore(KindGeneration, fetcher(r, KindGeneration, r.newGeneration))
	return r, nil
}

func fetcher[P any, R Record](r *Registry, kind Kind, construct func(context.Context, *P) (R, error)) FetchFunc[R] {
	return func(ctx context.Context, idOrName string) (R, error) {
		payload, err := pokeapi.Get[P](ctx, r.client, kind.Endpoint(), idOrName)
		if err != nil {
			var zero R
			return zero, err
		}
		return construct(ctx, payload)
	}
}

// resolve looks up a record referenced by a record of kind from. Every failure
// is logged and reported as absent so the referencing record still builds.
func resolve[R Record](ctx context.Context, r *Registry, from Kind, s *Store[R], query string) (R, bool) {
	var zero R
	if query == "" {
		return zero, false
	}
	to := s.Kind()
	attrs := []any{slog.String("from", from.String()), slog.String("to", to.String()), slog.String("query", query)}
	if !dependsOn(r.deps, from, to) {
		slog.Error("refusing undeclared resource dependency", attrs...)
		return zero, false
	}
	rec, found, err := s.HandleSearch(ctx, query)
	if err != nil {
		slog.Warn("resolving reference", append(attrs, slog.Any("error", err))...)
		return zero, false
	}
	if !found {
		slog.Warn("referenced resource not found", attrs...)
		return zero, false
	}
	return rec, true
}

func (r *Registry) lookupLocations(ctx context.Context, name string) map[string][]string {
	if r.locations == nil {
		return nil
	}
	locations, err := r.locations.Lookup(ctx, name)
	if err != nil {
		slog.Info("no location data", slog.String("pokemon", name), slog.Any("error", err))
		return nil
	}
	return locations
}

func search[R Record](ctx context.Context, s *Store[R], query string) (Record, bool, error) {
	rec, found, err := s.HandleSearch(ctx, query)
	if err != nil || !found {
		return nil, false, err
	}
	return rec, true, nil
}

// Search dispatches a query to the store of kind.
func (r *Registry) Search(ctx context.Context, kind Kind, query string) (Record, bool, error) {
	switch kind {
	case KindPokemon:
		return search(ctx, r.Pokemon, query)
	case KindAbility:
		return search(ctx, r.Ability, query)
	case KindType:
		return search(ctx, r.Type, query)
	case KindMove:
		return search(ctx, r.Move, query)
	case KindVersion:
		return search(ctx, r.Version, query)
	case KindSpecies:
		return search(ctx, r.Species, query)
	case KindVersionGroup:
		return search(ctx, r.VersionGroup, query)
	case KindGeneration:
		return search(ctx, r.Generation, query)
	}
	return nil, false, fmt.Errorf("unknown resource kind %d", int(kind))
}

type persistentStore interface {
	Kind() Kind
	Len() int
	SaveCache(dir string) error
	LoadCache(dir string) error
}

func (r *Registry) stores() []persistentStore {
	return []persistentStore{
		r.Pokemon, r.Ability, r.Type, r.Move,
		r.Version, r.Species, r.VersionGroup, r.Generation,
	}
}

// SaveCaches writes one snapshot file per kind into dir.
func (r *Registry) SaveCaches(dir string) error {
	var errs []error
	for _, s := range r.stores() {
		errs = append(errs, s.SaveCache(dir))
	}
	return errors.Join(errs...)
}

// LoadCaches loads every snapshot present in dir.
func (r *Registry) LoadCaches(dir string) error {
	var errs []error
	for _, s := range r.stores() {
		errs = append(errs, s.LoadCache(dir))
	}
	return errors.Join(errs...)
}

// Sizes reports the number of cached records per kind.
func (r *Registry) Sizes() map[Kind]int {
	sizes := make(map[Kind]int, len(Kinds))
	for _, s := range r.stores() {
		sizes[s.Kind()] = s.Len()
	}
	return sizes
}

// Warm resolves generations 1..generations and pokemon 1..pokemon, filling
// every store along the way. Lookup failures are logged and skipped.
func (r *Registry) Warm(ctx context.Context, generations, pokemon int, progress func(kind Kind, done, total int)) error {
	steps := []struct {
		kind  Kind
		total int
	}{
		{KindGeneration, generations},
		{KindPokemon, pokemon},
	}
	for _, step := range steps {
		for i := 1; i <= step.total; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, found, err := r.Search(ctx, step.kind, strconv.Itoa(i))
			switch {
			case err != nil:
				slog.Warn("warming cache", slog.String("kind", step.kind.String()), slog.Int("id", i), slog.Any("error", err))
			case !found:
				slog.Debug("warming cache: not found", slog.String("kind", step.kind.String()), slog.Int("id", i))
			}
			if progress != nil {
				progress(step.kind, i, step.total)
			}
		}
	}
	return nil
}
