package middleware

import (
	"errors"
	"strings"

	"talent-bridge/internal/pkg/hrauth"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxStaffEmailKey = "staff_email"
	CtxStaffRoleKey  = "staff_role"
)

// AuthMiddleware gates the HR-only surface. Tokens are minted by the
// identity provider; this service only verifies them.
type AuthMiddleware struct {
	tokens hrauth.Service
}

func NewAuthMiddleware(tokens hrauth.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			if errors.Is(err, hrauth.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxStaffEmailKey, claims.Email)
		c.Locals(CtxStaffRoleKey, claims.Role)

		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
