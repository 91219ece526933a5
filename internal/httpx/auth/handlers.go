// Package auth implements registration, password login with per-IP lockout,
// token refresh and the Telegram login widget callback.
package auth

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/authattempt"
	"fiber-ent-market-pg/ent/identity"
	entuser "fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/internal/config"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
)

const (
	lockoutWindow   = 15 * time.Minute
	lockoutFailures = 5
)

func rolesFor(u *ent.User) []string {
	if u.Type == entuser.TypeAdmin {
		return []string{"admin"}
	}
	return nil
}

func issueTokens(cfg *config.Config, c *fiber.Ctx, u *ent.User, isNew bool) error {
	sub := "user:" + u.ID.String()
	access, _, err := SignAccess(cfg, sub, "user", rolesFor(u))
	if err != nil {
		return kit.InternalError("sign access failed", err.Error())
	}
	refresh, _, err := SignRefresh(cfg, sub, "user")
	if err != nil {
		return kit.InternalError("sign refresh failed", err.Error())
	}
	SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
	return kit.OK(c, TokenResponse{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   cfg.JWT.AccessMin * 60,
		UserID:      u.ID.String(),
		Username:    u.Username,
		IsNewUser:   isNew,
	})
}

// ipLocked reports whether the IP accumulated too many failures in the window.
func ipLocked(ctx context.Context, client *ent.Client, ip string) bool {
	since := time.Now().UTC().Add(-lockoutWindow)
	n, err := client.AuthAttempt.Query().
		Where(
			authattempt.IPAddressEQ(ip),
			authattempt.SuccessEQ(false),
			authattempt.CreatedAtGTE(since),
		).
		Count(ctx)
	return err == nil && n >= lockoutFailures
}

func recordAttempt(ctx context.Context, client *ent.Client, ip, identifier string, success bool) {
	_ = client.AuthAttempt.Create().
		SetIPAddress(ip).
		SetIdentifier(identifier).
		SetSuccess(success).
		Exec(ctx)
}

// RegisterHandler creates a new user and a password identity, then returns JWTs.
//
//	@Summary      Register (password)
//	@Description  Create user + password identity, then issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.RegisterRequest  true  "register"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      429   {object}  map[string]interface{}
//	@Router       /api/v1/auth/register [post]
func RegisterHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil || req.Identifier == "" || req.Password == "" || req.Username == "" {
			return kit.BadRequest("identifier, username and password required", nil)
		}
		if len(req.Password) < 8 {
			return kit.BadRequest("password too short", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		hash, err := HashPassword(req.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}

		tx, err := client.Tx(ctx)
		if err != nil {
			return kit.InternalError("begin tx failed", err.Error())
		}
		defer func() { _ = tx.Rollback() }()

		u, err := tx.User.Create().
			SetUsername(req.Username).
			SetDisplayName(req.DisplayName).
			SetEmail(req.Identifier).
			Save(ctx)
		if err != nil {
			return kit.BadRequest("username already exists", nil)
		}
		_, err = tx.Identity.Create().
			SetProvider(identity.ProviderPassword).
			SetIdentifier(req.Identifier).
			SetSecretHash(hash).
			SetUser(u).
			Save(ctx)
		if err != nil {
			return kit.BadRequest("identifier already exists", nil)
		}
		if err := tx.Commit(); err != nil {
			return kit.InternalError("commit failed", err.Error())
		}
		return issueTokens(cfg, c, u, true)
	}
}

// LoginHandler authenticates a user via password identity and returns JWTs.
// Failed attempts are recorded per IP; too many recent failures lock the IP out.
//
//	@Summary      Login (password)
//	@Description  Authenticate by identifier/password and issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.LoginRequest  true  "login"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Failure      429   {object}  map[string]interface{}
//	@Router       /api/v1/auth/login [post]
func LoginHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Identifier == "" || req.Password == "" {
			return kit.BadRequest("identifier and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		ip := c.IP()
		if ipLocked(ctx, client, ip) {
			c.Set("Retry-After", "900")
			return fiber.NewError(fiber.StatusTooManyRequests, "too many failed attempts")
		}

		idn, err := client.Identity.Query().
			Where(identity.ProviderEQ(identity.ProviderPassword), identity.IdentifierEQ(req.Identifier)).
			WithUser().
			Only(ctx)
		if err != nil || idn.SecretHash == nil || !VerifyPassword(req.Password, *idn.SecretHash) {
			recordAttempt(ctx, client, ip, req.Identifier, false)
			return fiber.ErrUnauthorized
		}
		u := idn.Edges.User
		if u == nil {
			return kit.InternalError("identity has no user", nil)
		}
		if !u.IsActive {
			recordAttempt(ctx, client, ip, req.Identifier, false)
			return fiber.ErrForbidden
		}
		recordAttempt(ctx, client, ip, req.Identifier, true)
		_ = client.User.UpdateOneID(u.ID).SetLastLoginAt(time.Now().UTC()).Exec(ctx)
		return issueTokens(cfg, c, u, false)
	}
}

// RefreshHandler issues a new access token using refresh cookie.
//
//	@Summary      Refresh Access Token
//	@Description  Mint new access token from refresh cookie
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/refresh [post]
func RefreshHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rt := c.Cookies("refresh_token")
		if rt == "" {
			return fiber.ErrUnauthorized
		}
		claims, err := ParseAndValidate(cfg, rt)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		access, _, err := SignAccess(cfg, claims.Subject, claims.Kind, claims.Roles)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}

// LogoutHandler clears refresh cookie
//
//	@Summary      Logout (clear refresh)
//	@Description  Clear refresh cookie; access tokens expire naturally
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Success      204   {string}  string  "no content"
//	@Router       /api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MeHandler returns auth context if present.
//
//	@Summary      Who am I
//	@Description  Return current auth context
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/me [get]
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*mw.AuthContext)
		if ac == nil {
			return fiber.ErrUnauthorized
		}
		return kit.OK(c, fiber.Map{"subject": ac.Subject, "kind": ac.Kind, "roles": ac.Roles})
	}
}
