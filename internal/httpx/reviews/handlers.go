// Package reviews provides HTTP handlers for product reviews.
package reviews

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/product"
	"fiber-ent-market-pg/ent/review"
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
	"fiber-ent-market-pg/internal/mqx"
)

// CreateReviewRequest is the request body for creating a review
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// ListProductReviewsHandler lists reviews of one product, newest first.
//
//	@Summary      List product reviews
//	@Tags         reviews
//	@Produce      json
//	@Param        id      path   string  true   "Product UUID"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/products/{id}/reviews [get]
func ListProductReviewsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pid, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid product id", c.Params("id"))
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := client.Review.Query().
			Where(review.HasProductWith(product.IDEQ(pid))).
			WithUser().
			Order(ent.Desc(review.FieldCreatedAt)).
			Limit(pg.Limit).
			Offset(pg.Offset).
			All(ctx)
		if err != nil {
			return kit.InternalError("query reviews failed", err.Error())
		}
		nextOff := pg.Offset + len(items)
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: &nextOff, HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// CreateReviewHandler creates a review for a product. One review per user and
// product; the seller's cached rating is recomputed afterwards.
//
//	@Summary      Create review
//	@Tags         reviews
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string  true  "Product UUID"
//	@Param        body  body  reviews.CreateReviewRequest  true  "review"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/products/{id}/reviews [post]
func CreateReviewHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*mw.AuthContext)
		uid, ok := ac.UserID()
		if !ok {
			return fiber.ErrUnauthorized
		}
		pid, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid product id", c.Params("id"))
		}
		var req CreateReviewRequest
		if err := c.BodyParser(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
			return kit.BadRequest("rating must be between 1 and 5", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		p, err := client.Product.Query().Where(product.IDEQ(pid)).WithSeller().Only(ctx)
		if err != nil {
			return kit.NotFound("product not found")
		}

		created, err := client.Review.Create().
			SetRating(req.Rating).
			SetComment(req.Comment).
			SetUserID(uid).
			SetProduct(p).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.BadRequest("product already reviewed", nil)
			}
			return kit.InternalError("create review failed", err.Error())
		}

		if p.Edges.Seller != nil {
			if err := RecomputeSellerRating(ctx, client, p.Edges.Seller.ID); err != nil {
				return kit.InternalError("recompute rating failed", err.Error())
			}
		}
		mqx.Emit(ctx, pub, "review.created", map[string]any{
			"review_id":  created.ID.String(),
			"product_id": pid.String(),
			"rating":     req.Rating,
		})
		return kit.Created(c, created)
	}
}

// RecomputeSellerRating stores the mean rating over all reviews of the
// seller's products. No reviews means rating 0.
func RecomputeSellerRating(ctx context.Context, client *ent.Client, sellerID uuid.UUID) error {
	var agg []struct {
		Avg *float64 `json:"avg"`
	}
	err := client.Review.Query().
		Where(review.HasProductWith(product.HasSellerWith(seller.IDEQ(sellerID)))).
		Aggregate(ent.Mean(review.FieldRating)).
		Scan(ctx, &agg)
	if err != nil {
		return err
	}
	mean := 0.0
	if len(agg) > 0 && agg[0].Avg != nil {
		mean = *agg[0].Avg
	}
	return client.Seller.UpdateOneID(sellerID).SetRating(mean).Exec(ctx)
}
