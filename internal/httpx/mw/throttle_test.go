package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func throttledApp(rps, burst int) *fiber.App {
	app := fiber.New()
	app.Post("/login", LoginThrottle(rps, burst), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestLoginThrottle_BurstThenBlock(t *testing.T) {
	app := throttledApp(1, 2)

	for i := 0; i < 2; i++ {
		res, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status=%d", i, res.StatusCode)
		}
	}
	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if res.Header.Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After")
	}
}

func TestLoginThrottle_DisabledWhenZero(t *testing.T) {
	app := throttledApp(0, 0)
	for i := 0; i < 10; i++ {
		res, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status=%d", i, res.StatusCode)
		}
	}
}

func TestAuthContext_UserID(t *testing.T) {
	var nilCtx *AuthContext
	if _, ok := nilCtx.UserID(); ok {
		t.Fatalf("nil context should have no user id")
	}
	if _, ok := (&AuthContext{Subject: "svc:abc"}).UserID(); ok {
		t.Fatalf("non-user subject should have no user id")
	}
	if _, ok := (&AuthContext{Subject: "user:not-a-uuid"}).UserID(); ok {
		t.Fatalf("malformed uuid should have no user id")
	}
	ac := &AuthContext{Subject: "user:6e3c1f3a-58b4-4da1-9a5f-9f8a2fbf10aa", Kind: "user"}
	id, ok := ac.UserID()
	if !ok || id.String() != "6e3c1f3a-58b4-4da1-9a5f-9f8a2fbf10aa" {
		t.Fatalf("id=%v ok=%v", id, ok)
	}
}

func TestRequireRoles(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		c.Locals("auth", &AuthContext{Subject: "user:x", Kind: "user", Roles: []string{"support"}})
		return c.Next()
	}, RequireRoles("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
