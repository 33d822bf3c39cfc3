package auth

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// Optional attaches the caller identity to the request when a valid bearer
// token is present and lets the request through untouched otherwise; the
// GraphQL layer decides per operation whether a viewer is required ("me"
// simply resolves to null for anonymous callers).
func Optional() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: Secret(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Missing or invalid token: proceed anonymously.
			return c.Next()
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Next()
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Next()
			}
			userID, err := extractUserID(claims)
			if err != nil {
				return c.Next()
			}
			role, err := extractRole(claims)
			if err != nil {
				return c.Next()
			}

			c.Locals("userID", userID)
			c.Locals("role", role)
			return c.Next()
		},
	})
}
