package middleware

import (
	"errors"
	"strings"

	"talent-match/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const ctxIdentityKey = "identity"

// Identity is the authenticated caller, taken from a verified access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func IdentityFrom(c fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(ctxIdentityKey).(Identity)
	return id, ok && id.UserID != uuid.Nil
}

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case err != nil, m.jwt.IsRefreshToken(claims):
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(ctxIdentityKey, Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role})
		return c.Next()
	}
}

// RequireRole rejects callers whose role fails allowed. It must run after
// AuthMiddleware.
func RequireRole(allowed func(role string) bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := IdentityFrom(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if !allowed(id.Role) {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}

func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
