package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nerdwave-nick/pokewrap/internal/api"
	"github.com/nerdwave-nick/pokewrap/internal/api/health"
	intapi "github.com/nerdwave-nick/pokewrap/internal/api/pokeapi"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resource lookups as a JSON api",
		RunE:  withApp(runServe),
	}
	cmd.Flags().IntP("port", "p", 8080, "The port to listen on")
	rootCmd.AddCommand(cmd)
}

func stopServerWithTimeout(server *http.Server) error {
	slog.Debug("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := server.Shutdown(ctx)
	if err != nil {
		slog.Error("shutting down http server", slog.Any("error", err))
		return err
	}
	return nil
}

func runServe(parentCtx context.Context, app *application, cmd *cobra.Command, _ []string) error {
	port, _ := cmd.Flags().GetInt("port")
	if port <= 0 {
		return fmt.Errorf("port must be greater than 0")
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	router := api.MakeRouter(
		http.NewServeMux(),
		[]api.Controller{
			health.MakeController(func() map[string]int {
				records := make(map[string]int)
				for kind, n := range app.registry.Sizes() {
					records[kind.Endpoint()] = n
				}
				return records
			}),
			intapi.MakeController(app.registry),
		},
	)
	slog.Debug("router created, proceeding to start backend...")

	server := &http.Server{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
	}

	go func() {
		defer cancel()
		slog.Info("server ready to listen...", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return
			}
			slog.Error("error in listen and serve", slog.Any("error", err))
		}
	}()

	<-ctx.Done()
	return stopServerWithTimeout(server)
}
