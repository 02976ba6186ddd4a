package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

// FetchFunc fetches and constructs the record identified by an id or a
// lowercase name. It returns pokeapi.ErrNotFound when no such record exists.
type FetchFunc[R Record] func(ctx context.Context, idOrName string) (R, error)

// Store is the read-through cache of one resource kind, indexed by id and by name.
type Store[R Record] struct {
	kind  Kind
	fetch FetchFunc[R]

	mu     sync.RWMutex
	byID   map[int]R
	byName map[string]int
}

func NewStore[R Record](kind Kind, fetch FetchFunc[R]) *Store[R] {
	return &Store[R]{
		kind:   kind,
		fetch:  fetch,
		byID:   make(map[int]R),
		byName: make(map[string]int),
	}
}

func (s *Store[R]) Kind() Kind {
	return s.kind
}

func (s *Store[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// validQuery matches a numeric id or a PokeAPI name slug.
var validQuery = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// normalizeQuery lowercases query and joins its words with dashes, so
// "Mr Mime" becomes "mr-mime".
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), "-")
}

// lookup answers a query from memory only.
func (s *Store[R]) lookup(query string) (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, err := strconv.Atoi(query); err == nil {
		r, ok := s.byID[id]
		return r, ok
	}
	id, ok := s.byName[query]
	if !ok {
		var zero R
		return zero, false
	}
	r, ok := s.byID[id]
	return r, ok
}

// HandleSearch resolves a numeric id or a case-insensitive name. Cached records
// are returned without a remote call. A record that does not exist remotely
// yields found=false and a nil error; err is reserved for failures to check.
// A query that is neither an id nor a name slug cannot exist and is never sent.
func (s *Store[R]) HandleSearch(ctx context.Context, query string) (r R, found bool, err error) {
	query = normalizeQuery(query)
	if query == "" {
		return r, false, nil
	}
	if !validQuery.MatchString(query) {
		slog.Debug("invalid resource query", slog.String("kind", s.kind.String()), slog.String("query", query))
		return r, false, nil
	}
	if cached, ok := s.lookup(query); ok {
		slog.Debug("resource cache hit", slog.String("kind", s.kind.String()), slog.String("query", query))
		return cached, true, nil
	}

	fetched, err := s.fetch(ctx, query)
	if errors.Is(err, pokeapi.ErrNotFound) {
		slog.Debug("resource not found", slog.String("kind", s.kind.String()), slog.String("query", query))
		return r, false, nil
	}
	if err != nil {
		return r, false, fmt.Errorf("searching %s %q: %w", s.kind, query, err)
	}
	// nested lookups fail once ctx is done, the record may be missing references
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = &pokeapi.TransportError{Endpoint: s.kind.Endpoint() + "/" + query, Err: ctxErr}
		return r, false, fmt.Errorf("searching %s %q: %w", s.kind, query, err)
	}
	s.AddToCache(fetched)
	return fetched, true, nil
}

// AddToCache indexes r by id and name, replacing any record with the same id.
func (s *Store[R]) AddToCache(r R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insert(r)
}

func (s *Store[R]) insert(r R) {
	id := r.RecordID()
	if old, ok := s.byID[id]; ok {
		delete(s.byName, normalizeName(old.RecordName()))
	}
	s.byID[id] = r
	if name := normalizeName(r.RecordName()); name != "" {
		s.byName[name] = id
	}
}

func (s *Store[R]) snapshotPath(dir string) string {
	return filepath.Join(dir, s.kind.Endpoint()+".json")
}

// SaveCache writes the id index to <dir>/<endpoint>.json, creating dir if needed.
func (s *Store[R]) SaveCache(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	s.mu.RLock()
	bytes, err := json.Marshal(s.byID)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding %s cache: %w", s.kind, err)
	}

	path := s.snapshotPath(dir)
	tmp, err := os.CreateTemp(dir, "."+s.kind.Endpoint()+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(bytes); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s cache: %w", s.kind, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s cache: %w", s.kind, err)
	}
	slog.Debug("saved resource cache", slog.String("kind", s.kind.String()), slog.String("path", path))
	return nil
}

// LoadCache merges <dir>/<endpoint>.json into the store and rebuilds the name
// index from the loaded records. A missing file leaves the store untouched.
func (s *Store[R]) LoadCache(dir string) error {
	path := s.snapshotPath(dir)
	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s cache: %w", s.kind, err)
	}

	loaded := make(map[int]R)
	if err := json.Unmarshal(bytes, &loaded); err != nil {
		return fmt.Errorf("decoding %s cache %s: %w", s.kind, path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	skipped := 0
	for id, r := range loaded {
		if id <= 0 || r.RecordID() != id {
			skipped++
			continue
		}
		s.insert(r)
	}
	if skipped > 0 {
		slog.Warn("skipped invalid snapshot entries", slog.String("kind", s.kind.String()), slog.String("path", path), slog.Int("skipped", skipped))
	}
	slog.Debug("loaded resource cache", slog.String("kind", s.kind.String()), slog.Int("records", len(loaded)-skipped))
	return nil
}
