package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/nerdwave-nick/pokewrap/internal/locations"
	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	LogLevel     string
	CacheDir     string
	BaseURL      string
	LocationsURL string
	Timeout      int
	Rate         float64
	L1CacheSize  int
	L1CacheTTL   int
	L2CacheTTL   int
	GCInterval   int
	NoPersist    bool
}

// envOptions are read from the environment and only override flags the user did not set.
type envOptions struct {
	LogLevel     string  `env:"POKEWRAP_LOG_LEVEL"`
	CacheDir     string  `env:"POKEWRAP_CACHE_DIR"`
	BaseURL      string  `env:"POKEWRAP_BASE_URL"`
	LocationsURL string  `env:"POKEWRAP_LOCATIONS_URL"`
	Timeout      int     `env:"POKEWRAP_TIMEOUT"`
	Rate         float64 `env:"POKEWRAP_RATE"`
}

func (o *RootOptions) applyEnv(changed func(flag string) bool) error {
	e, err := env.ParseAs[envOptions]()
	if err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if e.LogLevel != "" && !changed("level") {
		o.LogLevel = e.LogLevel
	}
	if e.CacheDir != "" && !changed("cache-dir") {
		o.CacheDir = e.CacheDir
	}
	if e.BaseURL != "" && !changed("base-url") {
		o.BaseURL = e.BaseURL
	}
	if e.LocationsURL != "" && !changed("locations-url") {
		o.LocationsURL = e.LocationsURL
	}
	if e.Timeout != 0 && !changed("timeout") {
		o.Timeout = e.Timeout
	}
	if e.Rate != 0 && !changed("rate") {
		o.Rate = e.Rate
	}
	return nil
}

func (o *RootOptions) Validate() error {
	concatErr := func(err error, olderr error) error {
		if olderr != nil {
			return fmt.Errorf("%s\n%w", err.Error(), olderr)
		}
		return err
	}
	var err error
	if o.CacheDir == "" {
		err = concatErr(fmt.Errorf("cache-dir can't be empty"), err)
	}
	if o.BaseURL == "" {
		err = concatErr(fmt.Errorf("base-url can't be empty"), err)
	}
	if o.LocationsURL == "" {
		err = concatErr(fmt.Errorf("locations-url can't be empty"), err)
	}
	if o.Timeout <= 0 {
		err = concatErr(fmt.Errorf("timeout must be greater than 0"), err)
	}
	if o.Rate <= 0 {
		err = concatErr(fmt.Errorf("rate must be greater than 0"), err)
	}
	if o.L2CacheTTL <= 0 {
		err = concatErr(fmt.Errorf("l2-ttl must be greater than 0"), err)
	}
	if o.L1CacheTTL <= 0 {
		err = concatErr(fmt.Errorf("l1-ttl must be greater than 0"), err)
	}
	if o.L1CacheSize <= 0 {
		err = concatErr(fmt.Errorf("l1-size must be greater than 0"), err)
	}
	if o.GCInterval <= 0 {
		err = concatErr(fmt.Errorf("gc-interval must be greater than 0"), err)
	}
	return err
}

func (o *RootOptions) snapshotDir() string {
	return filepath.Join(o.CacheDir, "resources")
}

func (o *RootOptions) badgerDir() string {
	return filepath.Join(o.CacheDir, "responses")
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.Warn("no/invalid log level provided, setting to info")
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}
}

var rootOpts = &RootOptions{}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpts.CacheDir, "cache-dir", ".pokewrap", "Directory holding the resource snapshots and the badger response cache. Created when it doesn't exist.")
	flags.StringVar(&rootOpts.BaseURL, "base-url", pokeapi.DefaultBaseURL, "Base URL of the PokeAPI service.")
	flags.StringVar(&rootOpts.LocationsURL, "locations-url", locations.DefaultBaseURL, "Base URL of the pokedex pages scraped for locations.")
	flags.IntVar(&rootOpts.Timeout, "timeout", 10, "Timeout of a single remote request in seconds. Needs to be greater than 0.")
	flags.Float64Var(&rootOpts.Rate, "rate", 5, "Maximum remote requests per second. Needs to be greater than 0.")
	flags.IntVar(&rootOpts.GCInterval, "gc-interval", 600, "The garbage collection interval of the badger db in seconds. Needs to be greater than 0.")
	flags.IntVar(&rootOpts.L2CacheTTL, "l2-ttl", 86400, "The ttl of the persistent l2 response cache in seconds. Needs to be greater than 0.")
	flags.IntVar(&rootOpts.L1CacheTTL, "l1-ttl", 7200, "The ttl of the in-memory l1 response cache in seconds. Needs to be greater than 0.")
	flags.IntVar(&rootOpts.L1CacheSize, "l1-size", 2000, "The size of the in-memory l1 response cache in number of items. Needs to be greater than 0.")
	flags.BoolVar(&rootOpts.NoPersist, "no-persist", false, "Keep every cache in memory: no snapshots are loaded or saved and no badger db is opened.")
	flags.StringVarP(&rootOpts.LogLevel, "level", "l", "info", "The log level. Valid levels are debug, info, warn, and error.")
}

var rootCmd = &cobra.Command{
	Use:   "pokewrap",
	Short: "pokewrap - look up pokemon, abilities, moves and games from pokeapi",
	Long: "pokewrap - look up pokemon, abilities, moves and games from pokeapi\n\n" +
		"Results are cached in memory, in a badger response cache and in per kind snapshot files.\n" +
		"Without a subcommand an interactive search loop is started.",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := rootOpts.applyEnv(cmd.Flags().Changed); err != nil {
			return err
		}
		if err := rootOpts.Validate(); err != nil {
			return fmt.Errorf("incorrect command usage:\n%w\n", err)
		}
		setLogLevel(rootOpts.LogLevel)
		return nil
	},
	RunE: withApp(func(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
		err := app.session().interactive(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}),
}
