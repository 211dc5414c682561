package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Locals keys set by NewAuthMiddleware.
const (
	LocalUserID  = "userId"
	LocalIsAdmin = "isAdmin"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets the subject into c.Locals(LocalUserID) and the admin flag into c.Locals(LocalIsAdmin).
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})}
	if expectedIssuer != "" {
		opts = append(opts, jwt.WithIssuer(expectedIssuer))
	}
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenStr == "" {
			return unauthorized(c, "missing Authorization header")
		}
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
			return secretBytes, nil
		}, opts...)
		if err != nil || !token.Valid {
			return unauthorized(c, "invalid or expired token")
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalIsAdmin, claims.IsAdmin)
		return c.Next()
	}
}

// RequireAdmin must run after NewAuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals(LocalIsAdmin).(bool); !isAdmin {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
		}
		return c.Next()
	}
}

// bearerToken accepts "Bearer <token>" and a bare "<token>".
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": msg})
}
