package auth

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/identity"
	"fiber-ent-market-pg/internal/config"
	testutil "fiber-ent-market-pg/internal/httpx/kit/testutil"
)

func newTestApp(t *testing.T, client *ent.Client, cfg *config.Config) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Post("/auth/register", RegisterHandler(cfg, client)) },
		func(app *fiber.App) { app.Post("/auth/login", LoginHandler(cfg, client)) },
		func(app *fiber.App) { app.Post("/auth/telegram", TelegramLoginHandler(cfg, client)) },
		func(app *fiber.App) { app.Post("/auth/refresh", RefreshHandler(cfg)) },
	)
}

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	// Unique name per test keeps the shared-cache memory DBs isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := contextWithT(t)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	cfg.Telegram.BotToken = "123456:TEST_TOKEN"
	cfg.Telegram.AuthTTLSec = 300
	return cfg
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestRegister_CreatesUserAndIdentity(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	res := postJSON(t, app, "/auth/register", RegisterRequest{
		Identifier: "alice@example.com",
		Password:   "Secretp@ssw0rd",
		Username:   "alice",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" || !env.Data.IsNewUser {
		t.Fatalf("unexpected response: %+v", env.Data)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, err := client.User.Query().Count(ctx); err != nil || n != 1 {
		t.Fatalf("users=%d err=%v", n, err)
	}
	if n, err := client.Identity.Query().Where(identity.ProviderEQ(identity.ProviderPassword)).Count(ctx); err != nil || n != 1 {
		t.Fatalf("identities=%d err=%v", n, err)
	}
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, newTestConfig())

	res := postJSON(t, app, "/auth/register", RegisterRequest{
		Identifier: "bob@example.com",
		Password:   "short",
		Username:   "bob",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestLogin_Password_IssuesToken(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	ctx, cancel := contextWithT(t)
	defer cancel()
	u, err := client.User.Create().SetUsername("alice").SetDisplayName("Alice").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	hash, err := HashPassword("P@ssw0rd1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_, err = client.Identity.Create().SetProvider(identity.ProviderPassword).SetIdentifier("alice@example.com").SetSecretHash(hash).SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("create identity: %v", err)
	}

	res := postJSON(t, app, "/auth/login", LoginRequest{Identifier: "alice@example.com", Password: "P@ssw0rd1"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" || env.Data.Username != "alice" {
		t.Fatalf("unexpected response: %+v", env.Data)
	}
	claims, err := ParseAndValidate(cfg, env.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Kind != "user" || claims.Subject != "user:"+u.ID.String() {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, newTestConfig())

	ctx, cancel := contextWithT(t)
	defer cancel()
	u, _ := client.User.Create().SetUsername("carol").Save(ctx)
	hash, _ := HashPassword("correct-horse")
	_, _ = client.Identity.Create().SetProvider(identity.ProviderPassword).SetIdentifier("carol@example.com").SetSecretHash(hash).SetUser(u).Save(ctx)

	res := postJSON(t, app, "/auth/login", LoginRequest{Identifier: "carol@example.com", Password: "battery-staple"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if n, err := client.AuthAttempt.Query().Count(ctx); err != nil || n != 1 {
		t.Fatalf("attempts=%d err=%v", n, err)
	}
}

func TestLogin_LockoutAfterRepeatedFailures(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, newTestConfig())

	for i := 0; i < lockoutFailures; i++ {
		res := postJSON(t, app, "/auth/login", LoginRequest{Identifier: "ghost@example.com", Password: "nope"})
		if res.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status=%d", i, res.StatusCode)
		}
	}
	res := postJSON(t, app, "/auth/login", LoginRequest{Identifier: "ghost@example.com", Password: "nope"})
	if res.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected lockout, status=%d", res.StatusCode)
	}
	if got := res.Header.Get("Retry-After"); got == "" {
		t.Fatalf("missing Retry-After")
	}
}

func TestRefresh_MintsNewAccessToken(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	refresh, _, err := SignRefresh(cfg, "user:0b9cbe85-ec6f-4c6e-9f1e-0d7c0f1a2b3c", "user")
	if err != nil {
		t.Fatalf("sign refresh: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" {
		t.Fatalf("missing access_token")
	}
}

func TestRefresh_MissingCookieUnauthorized(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, newTestConfig())

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func contextWithT(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}
