package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/crm-graphql/internal/application/crm"
	"github.com/jhoicas/crm-graphql/internal/domain/repository"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/countries"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/memory"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/postgres"
	apigql "github.com/jhoicas/crm-graphql/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/crm-graphql/internal/interfaces/http"
	"github.com/jhoicas/crm-graphql/pkg/config"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén de clientes: instancia única creada aquí e inyectada, sin estado global.
	var customerRepo repository.CustomerRepository
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
		customerRepo = postgres.NewCustomerRepository(pool)
	default:
		customerRepo = memory.NewCustomerRepository()
	}

	m := metrics.New()

	// El timeout del cliente HTTP es una cota superior; cada llamada lleva además su propio contexto.
	countriesClient := countries.NewClient(
		cfg.Upstream.CountriesURL,
		&http.Client{Timeout: 2 * cfg.Upstream.Timeout},
		log.Component("countries"),
	)

	customerUC := crm.NewCustomerUseCase(customerRepo, m, log.Component("crm"))
	countryUC := crm.NewCountryUseCase(countriesClient, cfg.Upstream.Timeout, m, log.Component("countries"))

	registry := apigql.NewRegistry(customerUC, countryUC)
	registry.Use(apigql.LoggingMiddleware(log.Component("dispatch")))

	schema, err := apigql.NewSchema(registry, log.Component("graphql"), cfg.GraphQL.MaxParallelism)
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}
	log.Info().Strs("operations", registry.Names()).Msg("operaciones registradas")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Upstream.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM GraphQL API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName: cfg.App.Name,
		Schema:  schema,
		Metrics: m,
		Log:     log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
