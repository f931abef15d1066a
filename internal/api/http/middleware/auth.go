package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
)

const localClaims = "auth_claims"

// Claims is the identity the upstream auth layer puts in each bearer token.
type Claims struct {
	UserID uuid.UUID
	Role   string
	Active bool
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// AuthRequired verifies the HS256 bearer token and stores the parsed claims
// in fiber locals.
func AuthRequired(cfg *config.Config) fiber.Handler {
	secret := []byte(cfg.Authentication.JWTSecret)
	issuer := cfg.Authentication.Issuer

	return func(c fiber.Ctx) error {
		raw := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if raw == "" {
			// Browsers cannot set headers on websocket upgrades; accept the
			// token as a query parameter there.
			raw = c.Query("token")
		}
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		parsed := &tokenClaims{}
		opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
		if issuer != "" {
			opts = append(opts, jwt.WithIssuer(issuer))
		}
		_, err := jwt.ParseWithClaims(raw, parsed, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, opts...)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		userID, err := uuid.Parse(parsed.Subject)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token subject"})
		}
		if !parsed.Active {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "account disabled"})
		}

		c.Locals(localClaims, &Claims{
			UserID: userID,
			Role:   parsed.Role,
			Active: parsed.Active,
		})
		return c.Next()
	}
}

// ClaimsFromFiber retrieves the authenticated claims set by AuthRequired.
func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(localClaims).(*Claims)
	return claims, ok && claims != nil
}

// RequireSuperAdmin gates the admin broadcast surface.
func RequireSuperAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := ClaimsFromFiber(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		if claims.Role != "super_admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}

// SignToken builds a token the middleware accepts. Exposed for tests and
// local tooling.
func SignToken(cfg *config.Config, claims Claims, ttlMinutes int) (string, error) {
	if ttlMinutes <= 0 {
		ttlMinutes = cfg.Authentication.TokenTTLMinutes
	}
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			Issuer:    cfg.Authentication.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlMinutes) * time.Minute)),
		},
		Role:   claims.Role,
		Active: claims.Active,
	})
	signed, err := tok.SignedString([]byte(cfg.Authentication.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
