//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

const swaggerTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "emotiond API",
        "description": "HTTP API for multi-label emotion analysis.",
        "version": "1.0"
    },
    "basePath": "/",
    "paths": {}
}`

func init() {
	swag.Register(swag.Name, &swag.Spec{
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  swaggerTemplate,
	})
}

// MountSwagger serves the Swagger UI at /api/docs when built with -tags=swagger.
func MountSwagger(r chi.Router) {
	r.Get("/api/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
