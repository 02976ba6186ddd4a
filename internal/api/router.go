package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
)

type Controller interface {
	RegisterRoutes(api huma.API)
}

// MakeRouter registers every controller on mux and wraps it with CORS handling.
func MakeRouter(mux *http.ServeMux, controllers []Controller) http.Handler {
	humaAPI := humago.New(mux, huma.DefaultConfig("pokewrap", "1.0.0"))
	for _, c := range controllers {
		c.RegisterRoutes(humaAPI)
	}
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}).Handler(mux)
}
