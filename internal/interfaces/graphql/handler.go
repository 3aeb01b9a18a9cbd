package graphql

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/infrastructure/metrics"
)

// Request cuerpo JSON de una petición GraphQL.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler ejecuta peticiones POST contra el schema. El usuario autenticado llega en
// c.UserContext() (ver WithUser); cada ejecución tiene un plazo de timeout.
// Las métricas se etiquetan con el campo raíz ejecutado, nunca con operationName.
func Handler(schema *graphqlgo.Schema, timeout time.Duration, m *metrics.Metrics) fiber.Handler {
	labels := newOperationLabeler()
	return func(c *fiber.Ctx) error {
		var req Request
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeBadRequest, Message: "body inválido: se espera JSON {query, operationName, variables}"})
		}
		if strings.TrimSpace(req.Query) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeBadRequest, Message: "query requerida"})
		}

		ctx := c.UserContext()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		resp := schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
		if m != nil {
			m.ObserveOperation(labels.label(req.Query, req.OperationName), len(resp.Errors) > 0, time.Since(start))
		}

		return c.JSON(resp)
	}
}
