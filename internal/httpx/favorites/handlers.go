// Package favorites provides HTTP handlers for favorite products and sellers.
package favorites

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/favorite"
	"fiber-ent-market-pg/ent/product"
	"fiber-ent-market-pg/ent/seller"
	entuser "fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
)

// ToggleFavoriteRequest names the product or seller to toggle. Exactly one
// of the two ids must be set.
// swagger:model ToggleFavoriteRequest
type ToggleFavoriteRequest struct {
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	SellerID  *uuid.UUID `json:"seller_id,omitempty"`
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	ac, _ := c.Locals("auth").(*mw.AuthContext)
	uid, ok := ac.UserID()
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uid, nil
}

// ListFavoritesHandler lists the current user's favorites with their targets.
//
//	@Summary      List favorites
//	@Tags         favorites
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/favorites [get]
func ListFavoritesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := client.Favorite.Query().
			Where(favorite.HasUserWith(entuser.IDEQ(uid))).
			WithProduct().
			WithSeller().
			Order(ent.Desc(favorite.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query favorites failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// ToggleFavoriteHandler adds or removes a favorite for a product or a seller.
// Responds with {favorited: bool} reflecting the new state.
//
//	@Summary      Toggle favorite
//	@Tags         favorites
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  favorites.ToggleFavoriteRequest  true  "target"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/favorites/toggle [post]
func ToggleFavoriteHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req ToggleFavoriteRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if (req.ProductID == nil) == (req.SellerID == nil) {
			return kit.BadRequest("exactly one of product_id or seller_id required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if req.ProductID != nil {
			return toggleProduct(ctx, c, client, uid, *req.ProductID)
		}
		return toggleSeller(ctx, c, client, uid, *req.SellerID)
	}
}

func toggleProduct(ctx context.Context, c *fiber.Ctx, client *ent.Client, uid, pid uuid.UUID) error {
	existing, err := client.Favorite.Query().
		Where(favorite.HasUserWith(entuser.IDEQ(uid)), favorite.HasProductWith(product.IDEQ(pid))).
		First(ctx)
	if err == nil {
		if err := client.Favorite.DeleteOne(existing).Exec(ctx); err != nil {
			return kit.InternalError("remove favorite failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"favorited": false})
	}
	if !ent.IsNotFound(err) {
		return kit.InternalError("query favorite failed", err.Error())
	}
	if _, err := client.Favorite.Create().SetUserID(uid).SetProductID(pid).Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return kit.NotFound("product not found")
		}
		return kit.InternalError("create favorite failed", err.Error())
	}
	return kit.OK(c, fiber.Map{"favorited": true})
}

func toggleSeller(ctx context.Context, c *fiber.Ctx, client *ent.Client, uid, sid uuid.UUID) error {
	existing, err := client.Favorite.Query().
		Where(favorite.HasUserWith(entuser.IDEQ(uid)), favorite.HasSellerWith(seller.IDEQ(sid))).
		First(ctx)
	if err == nil {
		if err := client.Favorite.DeleteOne(existing).Exec(ctx); err != nil {
			return kit.InternalError("remove favorite failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"favorited": false})
	}
	if !ent.IsNotFound(err) {
		return kit.InternalError("query favorite failed", err.Error())
	}
	if _, err := client.Favorite.Create().SetUserID(uid).SetSellerID(sid).Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return kit.NotFound("seller not found")
		}
		return kit.InternalError("create favorite failed", err.Error())
	}
	return kit.OK(c, fiber.Map{"favorited": true})
}
