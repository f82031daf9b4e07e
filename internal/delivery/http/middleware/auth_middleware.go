package middleware

import (
	"errors"
	"strings"

	"career-compass/internal/pkg/jwt"
	"career-compass/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Locals keys populated for handlers behind the auth middleware.
const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
)

// AuthMiddleware guards routes that require a valid access token. The
// caller's identity ends up in the request locals under CtxUserIDKey
// and CtxEmailKey.
type AuthMiddleware struct {
	jwt    jwt.Service
	logger logger.Logger
}

func NewAuthMiddleware(jwtSvc jwt.Service, log logger.Logger) *AuthMiddleware {
	if log == nil {
		log = logger.NewNop()
	}
	return &AuthMiddleware{jwt: jwtSvc, logger: log}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case err != nil:
			m.logger.Debug("access token rejected",
				zap.String("path", c.OriginalURL()), zap.Error(err))
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		case claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims):
			// A refresh token only buys a new pair at /auth/refresh.
			m.logger.Debug("non-access token on protected route",
				zap.String("path", c.OriginalURL()))
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		return c.Next()
	}
}

// bearerToken pulls the credential out of an Authorization header. It
// returns "" when the scheme is not Bearer or the token part is blank.
func bearerToken(header string) string {
	scheme, rest, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(rest)
}
