package intapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
	"github.com/nerdwave-nick/pokewrap/internal/resource"
)

type LookupInput struct {
	Kind  string `path:"kind" doc:"Resource kind, e.g. pokemon, ability or version-group"`
	Query string `path:"query" doc:"Numeric id or case-insensitive name"`
}

type LookupBody struct {
	Body struct {
		Kind   string `json:"kind"`
		Record any    `json:"record"`
	}
}

type Controller struct {
	reg *resource.Registry
}

func MakeController(reg *resource.Registry) *Controller {
	return &Controller{reg: reg}
}

func (c *Controller) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "lookup-resource",
		Method:      http.MethodGet,
		Path:        "/api/{kind}/{query}",
		Summary:     "Look up a resource by id or name",
		Tags:        []string{"Pokeapi"},
	}, c.Lookup)
}

// Lookup resolves a record through the resource caches, fetching it upstream on a miss.
func (c *Controller) Lookup(ctx context.Context, in *LookupInput) (*LookupBody, error) {
	kind, err := resource.ParseKind(in.Kind)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	rec, found, err := c.reg.Search(ctx, kind, in.Query)
	var malformed *resource.MalformedPayloadError
	switch {
	case errors.As(err, &malformed):
		return nil, huma.Error422UnprocessableEntity(malformed.Error())
	case pokeapi.IsTransport(err):
		slog.Warn("upstream lookup failed", slog.String("kind", kind.String()), slog.String("query", in.Query), slog.Any("error", err))
		return nil, huma.Error502BadGateway("upstream lookup failed", err)
	case err != nil:
		return nil, huma.Error500InternalServerError("lookup failed", err)
	case !found:
		return nil, huma.Error404NotFound(fmt.Sprintf("no %s matches %q", kind, in.Query))
	}

	out := &LookupBody{}
	out.Body.Kind = kind.Endpoint()
	out.Body.Record = rec
	return out, nil
}
