// Package admin contains admin-only management routes.
package admin

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/internal/httpx/kit"
)

// TierRequest is the request body for creating or updating a tier
// swagger:model TierRequest
type TierRequest struct {
	Name              string         `json:"name"`
	Price             float64        `json:"price"`
	MaxProducts       int            `json:"max_products"`
	MaxContactMethods int            `json:"max_contact_methods"`
	MaxBanners        int            `json:"max_banners"`
	Features          map[string]any `json:"features,omitempty"`
}

// PromoteUserHandler sets user.type=admin
//
//	@Summary      Promote user to admin
//	@Description  Set user.type = admin
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path      string  true  "User UUID"
//	@Success      200  {object}  map[string]string  "ok"
//	@Failure      400  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/admin/users/{id}/promote [post]
func PromoteUserHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := c.Params("id")
		uid, err := uuid.Parse(idStr)
		if err != nil {
			return kit.BadRequest("invalid user id", idStr)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		_, err = client.User.UpdateOneID(uid).SetType(user.TypeAdmin).Save(ctx)
		if err != nil {
			return kit.NotFound("user not found or update failed")
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}

// StatsHandler returns entity counts for the dashboard stat cards.
//
//	@Summary      Dashboard stats
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/admin/stats [get]
func StatsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		counts := fiber.Map{}
		for name, count := range map[string]func(context.Context) (int, error){
			"users":      client.User.Query().Count,
			"sellers":    client.Seller.Query().Count,
			"products":   client.Product.Query().Count,
			"categories": client.Category.Query().Count,
			"reviews":    client.Review.Query().Count,
			"banners":    client.Banner.Query().Count,
		} {
			n, err := count(ctx)
			if err != nil {
				return kit.InternalError("count failed", name)
			}
			counts[name] = n
		}
		return kit.OK(c, counts)
	}
}

// CreateTierHandler creates a subscription tier.
//
//	@Summary      Create subscription tier
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  admin.TierRequest  true  "tier"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/admin/tiers [post]
func CreateTierHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req TierRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name required", nil)
		}
		if req.Price < 0 || req.MaxProducts < 0 || req.MaxContactMethods < 0 || req.MaxBanners < 0 {
			return kit.BadRequest("negative values not allowed", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		cr := client.SubscriptionTier.Create().
			SetName(strings.TrimSpace(req.Name)).
			SetPrice(req.Price).
			SetMaxProducts(req.MaxProducts).
			SetMaxContactMethods(req.MaxContactMethods).
			SetMaxBanners(req.MaxBanners)
		if req.Features != nil {
			cr = cr.SetFeatures(req.Features)
		}
		created, err := cr.Save(ctx)
		if err != nil {
			return kit.BadRequest("tier already exists", req.Name)
		}
		return kit.Created(c, created)
	}
}

// UpdateTierHandler updates a subscription tier.
//
//	@Summary      Update subscription tier
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string  true  "Tier UUID"
//	@Param        body  body  admin.TierRequest  true  "tier"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/tiers/{id} [patch]
func UpdateTierHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid tier id", c.Params("id"))
		}
		var req TierRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		upd := client.SubscriptionTier.UpdateOneID(id).
			SetPrice(req.Price).
			SetMaxProducts(req.MaxProducts).
			SetMaxContactMethods(req.MaxContactMethods).
			SetMaxBanners(req.MaxBanners)
		if strings.TrimSpace(req.Name) != "" {
			upd = upd.SetName(strings.TrimSpace(req.Name))
		}
		if req.Features != nil {
			upd = upd.SetFeatures(req.Features)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("tier not found")
			}
			return kit.InternalError("update tier failed", err.Error())
		}
		return kit.OK(c, saved)
	}
}

// DeleteTierHandler deletes a subscription tier.
//
//	@Summary      Delete subscription tier
//	@Tags         admin
//	@Security     BearerAuth
//	@Param        id  path  string  true  "Tier UUID"
//	@Success      204  {string}  string  "no content"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/admin/tiers/{id} [delete]
func DeleteTierHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid tier id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := client.SubscriptionTier.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("tier not found")
			}
			return kit.InternalError("delete tier failed", err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
