package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Authentication: config.AuthenticationConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
			Issuer:          "gerenciador",
		},
	}
}

func authApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthRequired(cfg), func(c fiber.Ctx) error {
		claims, _ := ClaimsFromFiber(c)
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	app.Get("/admin", AuthRequired(cfg), RequireSuperAdmin(), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthRequired_MissingToken(t *testing.T) {
	app := authApp(testConfig())

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthRequired_ValidToken(t *testing.T) {
	cfg := testConfig()
	app := authApp(cfg)

	token, err := SignToken(cfg, Claims{UserID: uuid.New(), Role: "user", Active: true}, 0)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthRequired_TokenAsQueryParam(t *testing.T) {
	cfg := testConfig()
	app := authApp(cfg)

	token, err := SignToken(cfg, Claims{UserID: uuid.New(), Role: "user", Active: true}, 0)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/protected?token="+token, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("websocket clients pass the token as a query param; expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	signerCfg := testConfig()
	signerCfg.Authentication.JWTSecret = "other-secret"
	token, err := SignToken(signerCfg, Claims{UserID: uuid.New(), Role: "user", Active: true}, 0)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	app := authApp(testConfig())
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for foreign signature, got %d", resp.StatusCode)
	}
}

func TestAuthRequired_InactiveAccount(t *testing.T) {
	cfg := testConfig()
	app := authApp(cfg)

	token, err := SignToken(cfg, Claims{UserID: uuid.New(), Role: "user", Active: false}, 0)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("expected 403 for inactive account, got %d", resp.StatusCode)
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	cfg := testConfig()
	app := authApp(cfg)

	tests := []struct {
		role string
		want int
	}{
		{role: "super_admin", want: fiber.StatusOK},
		{role: "user", want: fiber.StatusForbidden},
		{role: "gestor", want: fiber.StatusForbidden},
	}

	for _, tt := range tests {
		token, err := SignToken(cfg, Claims{UserID: uuid.New(), Role: tt.role, Active: true}, 0)
		if err != nil {
			t.Fatalf("SignToken failed: %v", err)
		}
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != tt.want {
			t.Errorf("role %q: expected %d, got %d", tt.role, tt.want, resp.StatusCode)
		}
	}
}
