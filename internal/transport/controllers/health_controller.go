package controllers

import (
	"github.com/vayload/contact-validator/internal/transport/dtos"
	"github.com/vayload/contact-validator/pkg/httpi"
)

type HealthController struct {
	version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{version: version}
}

func (c *HealthController) Path() string {
	return "/healthz"
}

func (c *HealthController) Middlewares() []httpi.HttpHandler {
	return nil
}

func (c *HealthController) Routes() []httpi.HttpRoute {
	return []httpi.HttpRoute{
		{
			Path:    "/",
			Method:  httpi.GET,
			Handler: c.Health,
		},
	}
}

func (c *HealthController) Health(req httpi.HttpRequest, res httpi.HttpResponse) error {
	return res.Status(200).Json(dtos.HealthResponse{Status: "ok", Version: c.version})
}
