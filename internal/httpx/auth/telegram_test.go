package auth

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fiber-ent-market-pg/ent/identity"
	"fiber-ent-market-pg/ent/telegramaccount"
	"fiber-ent-market-pg/internal/telegram"
)

func signedWidgetRequest(botToken string, id int64, username string, authDate time.Time) TelegramLoginRequest {
	p := telegram.Payload{
		ID:        id,
		FirstName: "Ivan",
		Username:  username,
		AuthDate:  authDate.Unix(),
	}
	p.Hash = telegram.Sign(p, botToken)
	return TelegramLoginRequest{
		ID:        p.ID,
		FirstName: p.FirstName,
		Username:  p.Username,
		AuthDate:  p.AuthDate,
		Hash:      p.Hash,
	}
}

func TestTelegramLogin_FirstLoginProvisionsAccount(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	req := signedWidgetRequest(cfg.Telegram.BotToken, 12345, "ivan", time.Now().UTC())
	res := postJSON(t, app, "/auth/telegram", req)
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
	if env.Data.Username != "ivan_12345" {
		t.Fatalf("username=%q", env.Data.Username)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, _ := client.User.Query().Count(ctx); n != 1 {
		t.Fatalf("users=%d", n)
	}
	if n, _ := client.TelegramAccount.Query().Where(telegramaccount.TelegramIDEQ(12345)).Count(ctx); n != 1 {
		t.Fatalf("telegram accounts=%d", n)
	}
	idn, err := client.Identity.Query().
		Where(identity.ProviderEQ(identity.ProviderTelegram), identity.IdentifierEQ("12345@telegram.user")).
		Only(ctx)
	if err != nil {
		t.Fatalf("identity not found: %v", err)
	}
	if idn.SecretHash == nil || *idn.SecretHash == "" {
		t.Fatalf("identity has no secret hash")
	}
	// The stored credential must not verify against anything derivable
	// from the payload.
	if VerifyPassword("12345", *idn.SecretHash) {
		t.Fatalf("secret hash matches the raw telegram id")
	}
}

func TestTelegramLogin_SecondLoginReusesAccount(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	first := signedWidgetRequest(cfg.Telegram.BotToken, 777, "kasya", time.Now().UTC())
	if res := postJSON(t, app, "/auth/telegram", first); res.StatusCode != http.StatusOK {
		t.Fatalf("first login status=%d", res.StatusCode)
	}
	second := signedWidgetRequest(cfg.Telegram.BotToken, 777, "kasya_renamed", time.Now().UTC())
	res := postJSON(t, app, "/auth/telegram", second)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("second login status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.IsNewUser {
		t.Fatalf("second login flagged as new user")
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, _ := client.User.Query().Count(ctx); n != 1 {
		t.Fatalf("users=%d", n)
	}
	if n, _ := client.Identity.Query().Count(ctx); n != 1 {
		t.Fatalf("identities=%d", n)
	}
	// Profile data refreshes on each login.
	ta, err := client.TelegramAccount.Query().Where(telegramaccount.TelegramIDEQ(777)).Only(ctx)
	if err != nil {
		t.Fatalf("telegram account: %v", err)
	}
	if ta.Username != "kasya_renamed" {
		t.Fatalf("username not refreshed: %q", ta.Username)
	}
}

func TestTelegramLogin_RepairsMissingIdentity(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	req := signedWidgetRequest(cfg.Telegram.BotToken, 4242, "dana", time.Now().UTC())
	if res := postJSON(t, app, "/auth/telegram", req); res.StatusCode != http.StatusOK {
		t.Fatalf("first login failed")
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if _, err := client.Identity.Delete().Where(identity.ProviderEQ(identity.ProviderTelegram)).Exec(ctx); err != nil {
		t.Fatalf("delete identity: %v", err)
	}

	req2 := signedWidgetRequest(cfg.Telegram.BotToken, 4242, "dana", time.Now().UTC())
	res := postJSON(t, app, "/auth/telegram", req2)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("repair login status=%d", res.StatusCode)
	}
	n, _ := client.Identity.Query().
		Where(identity.ProviderEQ(identity.ProviderTelegram), identity.IdentifierEQ("4242@telegram.user")).
		Count(ctx)
	if n != 1 {
		t.Fatalf("identities after repair=%d", n)
	}
	if n, _ := client.User.Query().Count(ctx); n != 1 {
		t.Fatalf("users=%d", n)
	}
}

func TestTelegramLogin_RepairsMissingLink(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	req := signedWidgetRequest(cfg.Telegram.BotToken, 555000, "mira", time.Now().UTC())
	if res := postJSON(t, app, "/auth/telegram", req); res.StatusCode != http.StatusOK {
		t.Fatalf("first login failed")
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if _, err := client.TelegramAccount.Delete().Where(telegramaccount.TelegramIDEQ(555000)).Exec(ctx); err != nil {
		t.Fatalf("delete link: %v", err)
	}

	req2 := signedWidgetRequest(cfg.Telegram.BotToken, 555000, "mira", time.Now().UTC())
	res := postJSON(t, app, "/auth/telegram", req2)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("repair login status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.IsNewUser {
		t.Fatalf("repaired login flagged as new user")
	}
	if n, _ := client.TelegramAccount.Query().Where(telegramaccount.TelegramIDEQ(555000)).Count(ctx); n != 1 {
		t.Fatalf("links after repair=%d", n)
	}
	if n, _ := client.User.Query().Count(ctx); n != 1 {
		t.Fatalf("users=%d", n)
	}
	if n, _ := client.Identity.Query().Count(ctx); n != 1 {
		t.Fatalf("identities=%d", n)
	}
}

func TestTelegramLogin_TamperedHashUnauthorized(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	req := signedWidgetRequest(cfg.Telegram.BotToken, 99, "eve", time.Now().UTC())
	req.Username = "mallory" // break the signature
	res := postJSON(t, app, "/auth/telegram", req)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, _ := client.User.Query().Count(ctx); n != 0 {
		t.Fatalf("user created from forged payload")
	}
}

func TestTelegramLogin_ExpiredUnauthorized(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	req := signedWidgetRequest(cfg.Telegram.BotToken, 100, "old", time.Now().UTC().Add(-10*time.Minute))
	res := postJSON(t, app, "/auth/telegram", req)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestTelegramLogin_MissingBotTokenInternalError(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	cfg.Telegram.BotToken = ""
	app := newTestApp(t, client, cfg)

	req := signedWidgetRequest("123456:OTHER", 5, "x", time.Now().UTC())
	res := postJSON(t, app, "/auth/telegram", req)
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestTelegramLogin_MissingFieldsBadRequest(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	res := postJSON(t, app, "/auth/telegram", TelegramLoginRequest{ID: 1, AuthDate: time.Now().Unix()})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
