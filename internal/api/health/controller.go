package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type HealthBody struct {
	Body struct {
		Status string `json:"status" example:"ok"`
		// Records counts cached records per resource kind.
		Records map[string]int `json:"records"`
	}
}

type Controller struct {
	records func() map[string]int
}

func MakeController(records func() map[string]int) *Controller {
	return &Controller{records: records}
}

func (c *Controller) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, c.Healthz)
}

// Healthz reports that the server is up along with the size of each resource cache.
func (c *Controller) Healthz(_ context.Context, _ *struct{}) (*HealthBody, error) {
	out := &HealthBody{}
	out.Body.Status = "ok"
	if c.records != nil {
		out.Body.Records = c.records()
	}
	return out, nil
}
