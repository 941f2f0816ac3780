package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/crm-graphql/internal/application/dto"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

// HeaderRequestID cabecera con el ID de la petición GraphQL.
const HeaderRequestID = "X-Request-ID"

// GraphQLHandler expone el esquema GraphQL sobre HTTP.
type GraphQLHandler struct {
	schema  *gql.Schema
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema *gql.Schema, m *metrics.Metrics, log *logger.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, metrics: m, log: log}
}

// Execute godoc
// @Summary      Ejecutar una operación GraphQL
// @Description  Ejecuta query o mutation contra el esquema (customers, customerById, addCustomer,
//               countries, countryByCode, hello, helloWithName). Los errores de campo viajan en
//               errors[] con HTTP 200, según la convención GraphQL.
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GraphQLRequest  true  "query (obligatorio), operationName y variables"
// @Success      200   {object}  object
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /graphql [post]
func (h *GraphQLHandler) Execute(c *fiber.Ctx) error {
	var in dto.GraphQLRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es obligatorio"})
	}

	reqID := c.Get(HeaderRequestID)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(HeaderRequestID, reqID)

	start := time.Now()
	resp := h.schema.Exec(c.UserContext(), in.Query, in.OperationName, in.Variables)
	h.metrics.GraphQLRequest(len(resp.Errors) > 0)

	ev := h.log.Info()
	if len(resp.Errors) > 0 {
		ev = h.log.Warn().Str("first_error", resp.Errors[0].Message)
	}
	ev.Str("request_id", reqID).
		Str("operation", in.OperationName).
		Int("errors", len(resp.Errors)).
		Dur("elapsed", time.Since(start)).
		Msg("petición GraphQL")

	return c.JSON(resp)
}
