// Package subscriptions manages seller subscription tiers and purchases.
package subscriptions

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/subscriptiontier"
	entuser "fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
	"fiber-ent-market-pg/internal/mqx"
)

// SubscribeRequest is the request body for purchasing a tier
// swagger:model SubscribeRequest
type SubscribeRequest struct {
	TierID uuid.UUID `json:"tier_id"`
	Months int       `json:"months"`
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	ac, _ := c.Locals("auth").(*mw.AuthContext)
	if ac == nil || ac.Kind != "user" {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	uid, ok := ac.UserID()
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uid, nil
}

func currentSeller(ctx context.Context, client *ent.Client, uid uuid.UUID) (*ent.Seller, error) {
	s, err := client.Seller.Query().Where(seller.HasUserWith(entuser.IDEQ(uid))).Only(ctx)
	if err != nil {
		return nil, kit.Forbidden("seller account required")
	}
	return s, nil
}

// ListTiersHandler lists subscription tiers ordered by price.
//
//	@Summary      List subscription tiers
//	@Tags         subscriptions
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/subscriptions/tiers [get]
func ListTiersHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		tiers, err := client.SubscriptionTier.Query().
			Order(ent.Asc(subscriptiontier.FieldPrice)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query tiers failed", err.Error())
		}
		return kit.OK(c, tiers)
	}
}

// SubscribeHandler purchases a tier for N months. Prior active rows are
// deactivated in the same transaction.
//
//	@Summary      Subscribe to a tier
//	@Tags         subscriptions
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  subscriptions.SubscribeRequest  true  "subscribe"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Router       /api/v1/subscriptions [post]
func SubscribeHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req SubscribeRequest
		if err := c.BodyParser(&req); err != nil || req.TierID == uuid.Nil {
			return kit.BadRequest("tier_id required", nil)
		}
		if req.Months < 1 || req.Months > 24 {
			return kit.BadRequest("months must be between 1 and 24", req.Months)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		s, err := currentSeller(ctx, client, uid)
		if err != nil {
			return err
		}
		tier, err := client.SubscriptionTier.Get(ctx, req.TierID)
		if err != nil {
			return kit.NotFound("tier not found")
		}

		tx, err := client.Tx(ctx)
		if err != nil {
			return kit.InternalError("begin tx failed", err.Error())
		}
		defer func() { _ = tx.Rollback() }()

		if err := tx.SellerSubscription.Update().
			Where(
				sellersubscription.HasSellerWith(seller.IDEQ(s.ID)),
				sellersubscription.IsActiveEQ(true),
			).
			SetIsActive(false).
			Exec(ctx); err != nil {
			return kit.InternalError("deactivate prior subscriptions failed", err.Error())
		}

		now := time.Now().UTC()
		sub, err := tx.SellerSubscription.Create().
			SetSeller(s).
			SetTier(tier).
			SetStartsAt(now).
			SetEndsAt(now.AddDate(0, req.Months, 0)).
			SetIsActive(true).
			SetPaymentStatus(sellersubscription.PaymentStatusPaid).
			Save(ctx)
		if err != nil {
			return kit.InternalError("create subscription failed", err.Error())
		}
		if err := tx.Commit(); err != nil {
			return kit.InternalError("commit failed", err.Error())
		}
		mqx.Emit(ctx, pub, "subscription.created", map[string]any{
			"subscription_id": sub.ID.String(),
			"seller_id":       s.ID.String(),
			"tier":            tier.Name,
			"months":          req.Months,
		})
		return kit.Created(c, sub)
	}
}

// CurrentSubscriptionHandler returns the seller's active subscription with tier.
//
//	@Summary      Current subscription
//	@Tags         subscriptions
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/subscriptions/current [get]
func CurrentSubscriptionHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		s, err := currentSeller(ctx, client, uid)
		if err != nil {
			return err
		}
		sub, err := client.SellerSubscription.Query().
			Where(
				sellersubscription.HasSellerWith(seller.IDEQ(s.ID)),
				sellersubscription.IsActiveEQ(true),
				sellersubscription.EndsAtGT(time.Now().UTC()),
			).
			WithTier().
			Order(ent.Desc(sellersubscription.FieldEndsAt)).
			First(ctx)
		if err != nil {
			return kit.NotFound("no active subscription")
		}
		return kit.OK(c, sub)
	}
}

// CancelSubscriptionHandler deactivates the seller's active subscription.
//
//	@Summary      Cancel subscription
//	@Tags         subscriptions
//	@Produce      json
//	@Security     BearerAuth
//	@Success      204  {string}  string  "no content"
//	@Router       /api/v1/subscriptions/current [delete]
func CancelSubscriptionHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		s, err := currentSeller(ctx, client, uid)
		if err != nil {
			return err
		}
		n, err := client.SellerSubscription.Update().
			Where(
				sellersubscription.HasSellerWith(seller.IDEQ(s.ID)),
				sellersubscription.IsActiveEQ(true),
			).
			SetIsActive(false).
			Save(ctx)
		if err != nil {
			return kit.InternalError("cancel subscription failed", err.Error())
		}
		if n == 0 {
			return kit.NotFound("no active subscription")
		}
		mqx.Emit(ctx, pub, "subscription.cancelled", map[string]any{"seller_id": s.ID.String()})
		return c.SendStatus(fiber.StatusNoContent)
	}
}
