package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"gospelmedia_backend/internals/configs"
	helper "gospelmedia_backend/internals/helpers"
	"gospelmedia_backend/internals/logger"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errBadToken     = errors.New("invalid bearer token")
)

// AuthMiddleware resolves the caller's identity (user_id, tenant_id,
// user_type) from a bearer token into Locals. Mutating routes mount it;
// public reads do not. Failure terminates with the UNAUTHORIZED envelope
// before any service runs.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.Unauthorized(c)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			logger.Log.Error().Msg("JWT_SECRET is empty")
			return helper.StoreError(c, errors.New("missing JWT secret"))
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errBadToken
			}
			return []byte(secretKey), nil
		}); err != nil {
			logger.Log.Debug().Err(err).Msg("token parse failed")
			return helper.Unauthorized(c)
		}

		if err := validateExpiry(claims, 30*time.Second); err != nil {
			return helper.Unauthorized(c)
		}

		userID, _ := claims["user_id"].(string)
		tenantID, _ := claims["tenant_id"].(string)
		userType, _ := claims["user_type"].(string)
		if userID == "" || tenantID == "" {
			return helper.Unauthorized(c)
		}

		c.Locals("user_id", userID)
		c.Locals("tenant_id", tenantID)
		c.Locals("user_type", userType)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errBadToken
	}
	return parts[1], nil
}

// validateExpiry enforces exp when present, with a small clock skew leeway.
func validateExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}
