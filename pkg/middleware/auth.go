package middleware

import (
	"strings"

	"ccc-smartassist/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware requires a valid Bearer token and stores the claims in the
// request context.
func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromHeader(c, jwtManager)
		if err != nil {
			logger.Warn("Authentication failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization token required",
			})
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// AdminMiddleware requires a valid token with the admin role.
func AdminMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromHeader(c, jwtManager)
		if err != nil {
			logger.Warn("Authentication failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization token required",
			})
		}

		if claims.Role != "admin" {
			logger.Warn("Insufficient permissions",
				zap.String("user_id", claims.UserID),
				zap.String("role", claims.Role),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient permissions",
			})
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid token is present but
// lets anonymous (guest) requests through. The chat endpoint uses it: guests
// may chat, their conversations just are not persisted.
func OptionalAuthMiddleware(jwtManager *auth.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, err := claimsFromHeader(c, jwtManager); err == nil {
			storeClaims(c, claims)
		}
		return c.Next()
	}
}

func claimsFromHeader(c *fiber.Ctx, jwtManager *auth.JWTManager) (*auth.Claims, error) {
	token := c.Get("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		return nil, auth.ErrInvalidToken
	}
	return jwtManager.ValidateToken(token)
}

func storeClaims(c *fiber.Ctx, claims *auth.Claims) {
	c.Locals("userID", claims.UserID)
	c.Locals("username", claims.Username)
	c.Locals("role", claims.Role)
}
