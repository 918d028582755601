package middleware

import (
	"strings"

	"footballapi/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// claimsKey is where TokenDecode stores decoded claims in the request Locals.
const claimsKey = "claims"

// TokenDecode is a Fiber middleware that decodes a bearer token when one is
// present. Token verification is optional at this boundary: a missing or
// invalid token just leaves no claims behind, and the guards below decide
// whether that is an error for the route.
func TokenDecode(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := authService.ValidateToken(parts[1]); err == nil {
					c.Locals(claimsKey, claims)
				}
			}
		}
		return c.Next()
	}
}

// ClaimsFrom returns the decoded claims attached by TokenDecode, if any.
func ClaimsFrom(c *fiber.Ctx) (jwt.MapClaims, bool) {
	claims, ok := c.Locals(claimsKey).(jwt.MapClaims)
	return claims, ok
}

// AuthRequired halts the request with 401 when no valid claims are present.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := ClaimsFrom(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Valid credentials are required",
			})
		}
		return c.Next()
	}
}

// UserRequired halts with 401 when no valid claims are present, or 403 when
// the role claim is neither user nor admin.
func UserRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Valid credentials are required",
			})
		}
		role, _ := claims["type"].(string)
		if role != "user" && role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

// AdminRequired halts with 401 when no valid claims are present, or 403 when
// the role claim is not admin.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Valid credentials are required",
			})
		}
		if role, _ := claims["type"].(string); role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Insufficient permissions",
			})
		}
		return c.Next()
	}
}
