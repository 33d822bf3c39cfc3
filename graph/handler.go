package graph

import (
	"github.com/gofiber/fiber/v2"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/citasya/citas-api/models"
)

// Handler serves GraphQL over a single POST endpoint. The auth middleware
// stores the caller identity in fiber locals; it is moved onto the request
// context here so resolvers can see it.
func Handler(schema *graphql.Schema) fiber.Handler {
	type request struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req request
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}

		ctx := c.UserContext()
		if userID, ok := c.Locals("userID").(uint); ok {
			if role, ok := c.Locals("role").(models.Role); ok {
				ctx = WithViewer(ctx, Viewer{ID: userID, Role: role})
			}
		}

		return c.JSON(schema.Exec(ctx, req.Query, req.OperationName, req.Variables))
	}
}
