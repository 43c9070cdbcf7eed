package server

import (
	"encoding/json"

	"inkpost/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// graphqlRequest is the standard GraphQL-over-HTTP request body.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQL handles POST /graphql. The authenticated identity (if any) is
// already in the request context from the shared middleware, so both
// adapters see the same authorization outcomes.
func (s *Server) GraphQL(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid GraphQL request body"))
	}

	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.UserContext(),
	})

	return c.JSON(result)
}
