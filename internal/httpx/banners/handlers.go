// Package banners provides HTTP handlers for promotional banners.
package banners

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/banner"
	"fiber-ent-market-pg/ent/seller"
	entuser "fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
	"fiber-ent-market-pg/internal/httpx/subscriptions"
)

// CreateBannerRequest is the request body for creating a banner
// swagger:model CreateBannerRequest
type CreateBannerRequest struct {
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url,omitempty"`
	Placement string    `json:"placement,omitempty"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
}

// UpdateBannerRequest is the request body for updating a banner
// swagger:model UpdateBannerRequest
type UpdateBannerRequest struct {
	ImageURL  *string    `json:"image_url,omitempty"`
	LinkURL   *string    `json:"link_url,omitempty"`
	Placement *string    `json:"placement,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	ac, _ := c.Locals("auth").(*mw.AuthContext)
	uid, ok := ac.UserID()
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uid, nil
}

func isAdmin(c *fiber.Ctx) bool {
	ac, _ := c.Locals("auth").(*mw.AuthContext)
	return ac.HasRole("admin")
}

// ListActiveBannersHandler lists banners currently inside their display window.
//
//	@Summary      List active banners
//	@Tags         banners
//	@Produce      json
//	@Param        placement  query  string  false  "placement filter"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/banners [get]
func ListActiveBannersHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		now := time.Now().UTC()
		q := client.Banner.Query().
			Where(
				banner.IsActiveEQ(true),
				banner.StartsAtLTE(now),
				banner.EndsAtGTE(now),
			)
		if v := c.Query("placement"); v != "" {
			q = q.Where(banner.PlacementEQ(v))
		}
		items, err := q.Order(ent.Desc(banner.FieldCreatedAt)).All(ctx)
		if err != nil {
			return kit.InternalError("query banners failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// CreateBannerHandler creates a banner for the current seller, enforcing the
// tier max_banners cap.
//
//	@Summary      Create banner
//	@Tags         banners
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  banners.CreateBannerRequest  true  "banner"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Router       /api/v1/banners [post]
func CreateBannerHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req CreateBannerRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.ImageURL) == "" {
			return kit.BadRequest("image_url required", nil)
		}
		if req.StartsAt.IsZero() || req.EndsAt.IsZero() || !req.EndsAt.After(req.StartsAt) {
			return kit.BadRequest("ends_at must be after starts_at", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		s, err := client.Seller.Query().Where(seller.HasUserWith(entuser.IDEQ(uid))).Only(ctx)
		if err != nil {
			return kit.Forbidden("seller account required")
		}

		limits, err := subscriptions.EffectiveLimits(ctx, client, s.ID)
		if err != nil {
			return kit.InternalError("resolve tier limits failed", err.Error())
		}
		n, err := client.Banner.Query().Where(banner.HasSellerWith(seller.IDEQ(s.ID))).Count(ctx)
		if err != nil {
			return kit.InternalError("count banners failed", err.Error())
		}
		if n >= limits.MaxBanners {
			return kit.Forbidden("banner limit reached for current subscription tier")
		}

		created, err := client.Banner.Create().
			SetImageURL(req.ImageURL).
			SetLinkURL(req.LinkURL).
			SetPlacement(lo.Ternary(req.Placement != "", req.Placement, "home")).
			SetStartsAt(req.StartsAt.UTC()).
			SetEndsAt(req.EndsAt.UTC()).
			SetSeller(s).
			Save(ctx)
		if err != nil {
			return kit.InternalError("create banner failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// UpdateBannerHandler updates a banner. Owner or admin.
//
//	@Summary      Update banner
//	@Tags         banners
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string  true  "Banner UUID"
//	@Param        body  body  banners.UpdateBannerRequest  true  "banner"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/banners/{id} [patch]
func UpdateBannerHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid banner id", c.Params("id"))
		}
		var req UpdateBannerRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		b, err := client.Banner.Query().Where(banner.IDEQ(id)).WithSeller().Only(ctx)
		if err != nil {
			return kit.NotFound("banner not found")
		}
		if !isAdmin(c) {
			owner, err := b.Edges.Seller.QueryUser().Only(ctx)
			if err != nil || owner.ID != uid {
				return fiber.ErrForbidden
			}
		}

		upd := client.Banner.UpdateOneID(id)
		if req.ImageURL != nil {
			upd = upd.SetImageURL(*req.ImageURL)
		}
		if req.LinkURL != nil {
			upd = upd.SetLinkURL(*req.LinkURL)
		}
		if req.Placement != nil {
			upd = upd.SetPlacement(*req.Placement)
		}
		if req.StartsAt != nil {
			upd = upd.SetStartsAt(req.StartsAt.UTC())
		}
		if req.EndsAt != nil {
			upd = upd.SetEndsAt(req.EndsAt.UTC())
		}
		if req.IsActive != nil {
			upd = upd.SetIsActive(*req.IsActive)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update banner failed", err.Error())
		}
		return kit.OK(c, saved)
	}
}

// DeleteBannerHandler deletes a banner. Owner or admin.
//
//	@Summary      Delete banner
//	@Tags         banners
//	@Security     BearerAuth
//	@Param        id  path  string  true  "Banner UUID"
//	@Success      204  {string}  string  "no content"
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/banners/{id} [delete]
func DeleteBannerHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid banner id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		b, err := client.Banner.Query().Where(banner.IDEQ(id)).WithSeller().Only(ctx)
		if err != nil {
			return kit.NotFound("banner not found")
		}
		if !isAdmin(c) {
			owner, err := b.Edges.Seller.QueryUser().Only(ctx)
			if err != nil || owner.ID != uid {
				return fiber.ErrForbidden
			}
		}
		if err := client.Banner.DeleteOneID(id).Exec(ctx); err != nil {
			return kit.InternalError("delete banner failed", err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
