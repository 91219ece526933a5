package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/identity"
	"fiber-ent-market-pg/ent/telegramaccount"
	"fiber-ent-market-pg/internal/config"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/logx"
	"fiber-ent-market-pg/internal/telegram"
)

// TelegramLoginHandler verifies a login widget payload and resolves it to a
// local account, provisioning user + identity + telegram link on first login.
//
//	@Summary      Login (Telegram widget)
//	@Description  Verify widget signature and issue tokens; creates the account on first login
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.TelegramLoginRequest  true  "widget payload"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Failure      429   {object}  map[string]interface{}
//	@Router       /api/v1/auth/telegram [post]
func TelegramLoginHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	log := logx.GetScope("auth.telegram")
	return func(c *fiber.Ctx) error {
		var req TelegramLoginRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid payload", nil)
		}
		p := telegram.Payload{
			ID:        req.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Username:  req.Username,
			PhotoURL:  req.PhotoURL,
			AuthDate:  req.AuthDate,
			Hash:      req.Hash,
		}
		maxAge := time.Duration(cfg.Telegram.AuthTTLSec) * time.Second
		idn, err := telegram.VerifyWithin(p, cfg.Telegram.BotToken, time.Now().UTC(), maxAge)
		if err != nil {
			switch {
			case errors.Is(err, telegram.ErrNoBotToken):
				log.Error("bot token not configured")
				return kit.InternalError("telegram login unavailable", nil)
			case errors.Is(err, telegram.ErrMalformedPayload):
				return kit.BadRequest("invalid payload", nil)
			default:
				// Expired and forged payloads get the same answer.
				recordAttempt(c.Context(), client, c.IP(), telegram.SyntheticEmail(req.ID), false)
				return kit.Unauthorized("telegram authentication failed")
			}
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if ipLocked(ctx, client, c.IP()) {
			c.Set("Retry-After", "900")
			return fiber.NewError(fiber.StatusTooManyRequests, "too many failed attempts")
		}

		u, isNew, err := resolveTelegramUser(ctx, client, p, idn)
		if err != nil {
			log.Error("resolve telegram user failed", zap.Error(err))
			return kit.InternalError("telegram login failed", nil)
		}
		recordAttempt(ctx, client, c.IP(), idn.Email, true)
		return issueTokens(cfg, c, u, isNew)
	}
}

// resolveTelegramUser maps a verified identity onto a local user. The telegram
// numeric id is the lookup key; a missing identity row for an existing link is
// repaired rather than treated as an error.
func resolveTelegramUser(ctx context.Context, client *ent.Client, p telegram.Payload, idn telegram.Identity) (*ent.User, bool, error) {
	ta, err := client.TelegramAccount.Query().
		Where(telegramaccount.TelegramIDEQ(idn.TelegramID)).
		WithUser().
		Only(ctx)
	switch {
	case err == nil:
		u := ta.Edges.User
		if u == nil {
			u, err = ta.QueryUser().Only(ctx)
			if err != nil {
				return nil, false, err
			}
		}
		if err := repairIdentity(ctx, client, u, idn); err != nil {
			return nil, false, err
		}
		now := time.Now().UTC()
		_ = client.TelegramAccount.UpdateOneID(ta.ID).
			SetUsername(p.Username).
			SetFirstName(p.FirstName).
			SetLastName(p.LastName).
			SetPhotoURL(p.PhotoURL).
			SetLastLoginAt(now).
			Exec(ctx)
		_ = client.User.UpdateOneID(u.ID).SetLastLoginAt(now).Exec(ctx)
		return u, false, nil
	case ent.IsNotFound(err):
		// The inverse repair: identity survived but the link row is gone.
		if u, ok, err := repairTelegramLink(ctx, client, p, idn); err != nil {
			return nil, false, err
		} else if ok {
			return u, false, nil
		}
		u, err := provisionTelegramUser(ctx, client, p, idn)
		if err != nil {
			return nil, false, err
		}
		return u, true, nil
	default:
		return nil, false, err
	}
}

// repairIdentity re-creates the telegram identity row when it went missing.
func repairIdentity(ctx context.Context, client *ent.Client, u *ent.User, idn telegram.Identity) error {
	n, err := client.Identity.Query().
		Where(identity.ProviderEQ(identity.ProviderTelegram), identity.IdentifierEQ(idn.Email)).
		Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	secret, err := RandomSecret()
	if err != nil {
		return err
	}
	hash, err := HashPassword(secret)
	if err != nil {
		return err
	}
	return client.Identity.Create().
		SetProvider(identity.ProviderTelegram).
		SetIdentifier(idn.Email).
		SetSecretHash(hash).
		SetUser(u).
		Exec(ctx)
}

// repairTelegramLink re-creates the telegram account row when the identity
// still exists for the synthetic email. Returns ok=false when there is no
// identity either and a full provision is needed.
func repairTelegramLink(ctx context.Context, client *ent.Client, p telegram.Payload, idn telegram.Identity) (*ent.User, bool, error) {
	idr, err := client.Identity.Query().
		Where(identity.ProviderEQ(identity.ProviderTelegram), identity.IdentifierEQ(idn.Email)).
		WithUser().
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	u := idr.Edges.User
	if u == nil {
		u, err = idr.QueryUser().Only(ctx)
		if err != nil {
			return nil, false, err
		}
	}
	now := time.Now().UTC()
	err = client.TelegramAccount.Create().
		SetTelegramID(idn.TelegramID).
		SetUsername(p.Username).
		SetFirstName(p.FirstName).
		SetLastName(p.LastName).
		SetPhotoURL(p.PhotoURL).
		SetLastLoginAt(now).
		SetUser(u).
		Exec(ctx)
	if err != nil {
		return nil, false, err
	}
	_ = client.User.UpdateOneID(u.ID).SetLastLoginAt(now).Exec(ctx)
	return u, true, nil
}

// provisionTelegramUser creates user, identity and telegram link in one tx.
// The identity secret is a server-generated random credential, never anything
// derived from the telegram payload.
func provisionTelegramUser(ctx context.Context, client *ent.Client, p telegram.Payload, idn telegram.Identity) (*ent.User, error) {
	secret, err := RandomSecret()
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(secret)
	if err != nil {
		return nil, err
	}
	tx, err := client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	u, err := tx.User.Create().
		SetUsername(idn.Username).
		SetDisplayName(idn.FullName).
		SetEmail(idn.Email).
		SetAvatarURL(idn.AvatarURL).
		SetLastLoginAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	_, err = tx.Identity.Create().
		SetProvider(identity.ProviderTelegram).
		SetIdentifier(idn.Email).
		SetSecretHash(hash).
		SetUser(u).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	_, err = tx.TelegramAccount.Create().
		SetTelegramID(idn.TelegramID).
		SetUsername(p.Username).
		SetFirstName(p.FirstName).
		SetLastName(p.LastName).
		SetPhotoURL(p.PhotoURL).
		SetLastLoginAt(time.Now().UTC()).
		SetUser(u).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return u, nil
}
