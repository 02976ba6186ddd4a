package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/nerdwave-nick/pokewrap/internal/cache"
	"github.com/nerdwave-nick/pokewrap/internal/locations"
	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
	"github.com/nerdwave-nick/pokewrap/internal/render"
	"github.com/nerdwave-nick/pokewrap/internal/resource"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// application holds everything a command needs and owns its shutdown.
type application struct {
	opts     *RootOptions
	db       *badger.DB
	l1       *cache.OtterCache
	registry *resource.Registry
	renderer *render.Renderer
	stopGC   context.CancelFunc
}

func openApp(ctx context.Context, opts *RootOptions) (*application, error) {
	app := &application{opts: opts}

	// in memory otter cache
	l1, err := cache.BuildOtter(opts.L1CacheSize, time.Duration(opts.L1CacheTTL)*time.Second)
	if err != nil {
		return nil, err
	}
	app.l1 = l1
	var responses pokeapi.Cache = l1

	if !opts.NoPersist {
		// persistent badger db behind the in memory cache
		db, err := badger.Open(badger.DefaultOptions(opts.badgerDir()).WithLogger(&BadgerLoggerWrapper{}))
		if err != nil {
			l1.Close()
			return nil, err
		}
		app.db = db
		l2 := cache.NewBadgerCache(db, time.Duration(opts.L2CacheTTL)*time.Second)
		responses = cache.NewMultiLayerCache(l1, &l2)

		gcCtx, stop := context.WithCancel(ctx)
		app.stopGC = stop
		badgerBackgroundGC(gcCtx, db, time.Duration(opts.GCInterval)*time.Second)
		slog.Debug("badger db background gc started...")
	}

	httpClient := http.Client{Timeout: time.Duration(opts.Timeout) * time.Second}
	limiter := rate.NewLimiter(rate.Limit(opts.Rate), 1)
	client := pokeapi.NewClient(responses, httpClient,
		pokeapi.WithBaseURL(opts.BaseURL),
		pokeapi.WithLimiter(limiter),
	)
	scraper := locations.NewScraper(opts.LocationsURL, httpClient, responses, limiter)

	app.registry, err = resource.NewRegistry(client, scraper)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.renderer = render.NewRenderer(app.registry)

	if !opts.NoPersist {
		if err := app.registry.LoadCaches(opts.snapshotDir()); err != nil {
			slog.Warn("loading resource snapshots", slog.Any("error", err))
		}
	}
	return app, nil
}

func (a *application) session() *session {
	return newSession(a.registry, a.renderer)
}

// Close saves the resource snapshots and releases the caches.
func (a *application) Close() error {
	var errs []error
	if a.stopGC != nil {
		a.stopGC()
	}
	if a.registry != nil && !a.opts.NoPersist {
		errs = append(errs, a.registry.SaveCaches(a.opts.snapshotDir()))
	}
	if a.l1 != nil {
		a.l1.Close()
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

type appRunFunc func(ctx context.Context, app *application, cmd *cobra.Command, args []string) error

// withApp opens the application for the duration of a command.
func withApp(run appRunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context(), rootOpts)
		if err != nil {
			return err
		}
		defer func() {
			if err := app.Close(); err != nil {
				slog.Error("shutting down caches", slog.Any("error", err))
			}
		}()
		return run(cmd.Context(), app, cmd, args)
	}
}
