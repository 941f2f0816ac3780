package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/crm-graphql/internal/application/dto"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName string
	Schema  *gql.Schema
	Metrics *metrics.Metrics
	Log     *logger.Logger
}

// Router registra las rutas del servicio.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))

	graphqlHandler := NewGraphQLHandler(deps.Schema, deps.Metrics, deps.Log)
	app.Post("/graphql", graphqlHandler.Execute)
}
