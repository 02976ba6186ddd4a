package cache

import (
	"log/slog"

	"github.com/nerdwave-nick/pokeapi-go"
)

// MultiLayerCache consults its layers in order. A hit in a lower layer is
// written back to every layer above it.
type MultiLayerCache struct {
	caches []pokeapi.Cache
}

func NewMultiLayerCache(caches ...pokeapi.Cache) *MultiLayerCache {
	return &MultiLayerCache{caches: caches}
}

func (c *MultiLayerCache) Set(endpoint string, value any) error {
	slog.Debug("writing to multi layer cache", slog.String("endpoint", endpoint))
	for _, cache := range c.caches {
		err := cache.Set(endpoint, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *MultiLayerCache) Get(endpoint string, value any) (bool, error) {
	slog.Debug("getting from multi layer cache", slog.String("endpoint", endpoint))
	indexFound := -1
	for i, cache := range c.caches {
		found, err := cache.Get(endpoint, value)
		if err != nil {
			return found, err
		}
		if found {
			indexFound = i
			break
		}
	}
	if indexFound > 0 {
		for _, cache := range c.caches[:indexFound] {
			if err := cache.Set(endpoint, value); err != nil {
				slog.Warn("promoting cache entry", slog.String("endpoint", endpoint), slog.Any("error", err))
			}
		}
	}
	return indexFound >= 0, nil
}
