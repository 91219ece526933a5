// Package catalog provides HTTP handlers for categories, products and search.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/category"
	"fiber-ent-market-pg/ent/product"
	"fiber-ent-market-pg/ent/seller"
	entuser "fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/internal/esx"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
	"fiber-ent-market-pg/internal/httpx/subscriptions"
	"fiber-ent-market-pg/internal/mqx"
)

// CreateCategoryRequest is the request body for creating a category
// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// UpdateCategoryRequest is the request body for updating a category
// swagger:model UpdateCategoryRequest
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Image *string `json:"image,omitempty"`
}

// CreateProductRequest is the request body for creating a product
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images,omitempty"`
	CategoryID  uuid.UUID `json:"category_id"`
}

// UpdateProductRequest is the request body for updating a product
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Images      []string   `json:"images,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
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

func isAdmin(c *fiber.Ctx) bool {
	ac, _ := c.Locals("auth").(*mw.AuthContext)
	return ac.HasRole("admin")
}

// ListCategoriesHandler lists all categories.
//
//	@Summary      List categories
//	@Tags         catalog
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/categories [get]
func ListCategoriesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		cats, err := client.Category.Query().Order(ent.Asc(category.FieldName)).All(ctx)
		if err != nil {
			return kit.InternalError("query categories failed", err.Error())
		}
		return kit.OK(c, cats)
	}
}

// CreateCategoryHandler creates a category. Admin only (route-guarded).
//
//	@Summary      Create category
//	@Tags         catalog
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  catalog.CreateCategoryRequest  true  "category"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/admin/categories [post]
func CreateCategoryHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		created, err := client.Category.Create().
			SetName(strings.TrimSpace(req.Name)).
			SetImage(req.Image).
			Save(ctx)
		if err != nil {
			return kit.BadRequest("category already exists", req.Name)
		}
		return kit.Created(c, created)
	}
}

// UpdateCategoryHandler updates a category. Admin only (route-guarded).
//
//	@Summary      Update category
//	@Tags         catalog
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string  true  "Category UUID"
//	@Param        body  body  catalog.UpdateCategoryRequest  true  "category"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/categories/{id} [patch]
func UpdateCategoryHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid category id", c.Params("id"))
		}
		var req UpdateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		upd := client.Category.UpdateOneID(id)
		if req.Name != nil {
			upd = upd.SetName(strings.TrimSpace(*req.Name))
		}
		if req.Image != nil {
			upd = upd.SetImage(*req.Image)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("category not found")
			}
			return kit.InternalError("update category failed", err.Error())
		}
		return kit.OK(c, saved)
	}
}

// DeleteCategoryHandler deletes a category. Admin only (route-guarded).
//
//	@Summary      Delete category
//	@Tags         catalog
//	@Security     BearerAuth
//	@Param        id  path  string  true  "Category UUID"
//	@Success      204  {string}  string  "no content"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/admin/categories/{id} [delete]
func DeleteCategoryHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid category id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := client.Category.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("category not found")
			}
			return kit.InternalError("delete category failed", err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListProductsHandler lists products with filters, sorting and paging.
//
//	@Summary      List products
//	@Tags         catalog
//	@Produce      json
//	@Param        category_id  query  string  false  "filter by category"
//	@Param        seller_id    query  string  false  "filter by seller"
//	@Param        min_price    query  number  false  "minimum price"
//	@Param        max_price    query  number  false  "maximum price"
//	@Param        sort         query  string  false  "field:dir, e.g. price:asc"
//	@Param        limit        query  int     false  "page size"  default(20)
//	@Param        offset       query  int     false  "offset"     default(0)
//	@Param        cursor       query  string  false  "keyset cursor"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/products [get]
func ListProductsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		q := client.Product.Query().WithCategory().WithSeller()
		if v := c.Query("category_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return kit.BadRequest("invalid category_id", v)
			}
			q = q.Where(product.HasCategoryWith(category.IDEQ(id)))
		}
		if v := c.Query("seller_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return kit.BadRequest("invalid seller_id", v)
			}
			q = q.Where(product.HasSellerWith(seller.IDEQ(id)))
		}
		if v := c.QueryFloat("min_price", -1); v >= 0 {
			q = q.Where(product.PriceGTE(v))
		}
		if v := c.QueryFloat("max_price", -1); v >= 0 {
			q = q.Where(product.PriceLTE(v))
		}

		if pg.Mode == "cursor" {
			// Keyset over (created_at, id) descending. A bare id cursor
			// resolves its timestamp from the anchor row.
			cursorTS := pg.CursorTS
			if pg.CursorID != nil && cursorTS == nil {
				anchor, err := client.Product.Query().Where(product.IDEQ(*pg.CursorID)).Only(ctx)
				switch {
				case ent.IsNotFound(err):
					return kit.BadRequest("invalid cursor", pg.CursorID.String())
				case err != nil:
					return kit.InternalError("query products failed", err.Error())
				}
				cursorTS = lo.ToPtr(anchor.CreatedAt)
			}
			if cursorTS != nil && pg.CursorID != nil {
				ts, cid := *cursorTS, *pg.CursorID
				q = q.Where(product.Or(
					product.CreatedAtLT(ts),
					product.And(product.CreatedAtEQ(ts), product.IDLT(cid)),
				))
			}
			items, err := q.
				Order(ent.Desc(product.FieldCreatedAt), ent.Desc(product.FieldID)).
				Limit(pg.Limit).
				All(ctx)
			if err != nil {
				return kit.InternalError("query products failed", err.Error())
			}
			meta := kit.PageMeta{Limit: pg.Limit, Count: len(items), Mode: "cursor", HasMore: len(items) == pg.Limit}
			if len(items) > 0 {
				last := items[len(items)-1]
				meta.NextCursor = lo.ToPtr(kit.EncodeCursor(last.ID.String(), last.CreatedAt))
			}
			return kit.List(c, items, meta)
		}

		q, err = kit.ApplyProductSort(q, pg.Sort)
		if err != nil {
			return err
		}
		if pg.Sort == "" {
			q = q.Order(ent.Desc(product.FieldCreatedAt))
		}
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Mode: "offset"}
		if pg.WithTotal {
			total, err := q.Clone().Count(ctx)
			if err != nil {
				return kit.InternalError("count products failed", err.Error())
			}
			meta.Total = &total
		}
		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query products failed", err.Error())
		}
		nextOff := pg.Offset + len(items)
		meta.Count = len(items)
		meta.NextOffset = &nextOff
		meta.HasMore = len(items) == pg.Limit
		return kit.List(c, items, meta)
	}
}

// GetProductHandler returns one product with seller, category and reviews.
//
//	@Summary      Get product
//	@Tags         catalog
//	@Produce      json
//	@Param        id  path  string  true  "Product UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/products/{id} [get]
func GetProductHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid product id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		p, err := client.Product.Query().
			Where(product.IDEQ(id)).
			WithSeller().
			WithCategory().
			WithReviews(func(q *ent.ReviewQuery) { q.WithUser() }).
			Only(ctx)
		if err != nil {
			return kit.NotFound("product not found")
		}
		return kit.OK(c, p)
	}
}

// CreateProductHandler creates a product for the current seller, enforcing the
// tier max_products cap, then indexes the document and emits an event.
//
//	@Summary      Create product
//	@Tags         catalog
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  catalog.CreateProductRequest  true  "product"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Router       /api/v1/products [post]
func CreateProductHandler(client *ent.Client, pub mqx.Publisher, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req CreateProductRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" || req.CategoryID == uuid.Nil {
			return kit.BadRequest("name and category_id required", nil)
		}
		if req.Price < 0 {
			return kit.BadRequest("price must be non-negative", req.Price)
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
		n, err := client.Product.Query().Where(product.HasSellerWith(seller.IDEQ(s.ID))).Count(ctx)
		if err != nil {
			return kit.InternalError("count products failed", err.Error())
		}
		if n >= limits.MaxProducts {
			return kit.Forbidden("product limit reached for current subscription tier")
		}

		created, err := client.Product.Create().
			SetName(strings.TrimSpace(req.Name)).
			SetDescription(req.Description).
			SetPrice(req.Price).
			SetImages(req.Images).
			SetSeller(s).
			SetCategoryID(req.CategoryID).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.BadRequest("category not found", req.CategoryID)
			}
			return kit.InternalError("create product failed", err.Error())
		}

		if es != nil {
			_ = esx.IndexProduct(ctx, es, esx.ProductsIndex, productDoc(created, s.ID, req.CategoryID))
		}
		mqx.Emit(ctx, pub, "product.created", map[string]any{
			"product_id": created.ID.String(),
			"seller_id":  s.ID.String(),
			"name":       created.Name,
			"price":      created.Price,
		})
		return kit.Created(c, created)
	}
}

// UpdateProductHandler updates the current seller's product and re-indexes it.
//
//	@Summary      Update product
//	@Tags         catalog
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string  true  "Product UUID"
//	@Param        body  body  catalog.UpdateProductRequest  true  "product"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/products/{id} [patch]
func UpdateProductHandler(client *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid product id", c.Params("id"))
		}
		var req UpdateProductRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if req.Price != nil && *req.Price < 0 {
			return kit.BadRequest("price must be non-negative", *req.Price)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		p, err := client.Product.Query().Where(product.IDEQ(id)).WithSeller().WithCategory().Only(ctx)
		if err != nil {
			return kit.NotFound("product not found")
		}
		owner, err := p.Edges.Seller.QueryUser().Only(ctx)
		if err != nil || owner.ID != uid {
			return fiber.ErrForbidden
		}

		upd := client.Product.UpdateOneID(id)
		if req.Name != nil {
			upd = upd.SetName(strings.TrimSpace(*req.Name))
		}
		if req.Description != nil {
			upd = upd.SetDescription(*req.Description)
		}
		if req.Price != nil {
			upd = upd.SetPrice(*req.Price)
		}
		if req.Images != nil {
			upd = upd.SetImages(req.Images)
		}
		if req.CategoryID != nil {
			upd = upd.SetCategoryID(*req.CategoryID)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update product failed", err.Error())
		}

		if es != nil {
			catID := uuid.Nil
			if req.CategoryID != nil {
				catID = *req.CategoryID
			} else if p.Edges.Category != nil {
				catID = p.Edges.Category.ID
			}
			_ = esx.IndexProduct(ctx, es, esx.ProductsIndex, productDoc(saved, p.Edges.Seller.ID, catID))
		}
		return kit.OK(c, saved)
	}
}

// DeleteProductHandler deletes a product (owner or admin), removes the search
// document and emits an event.
//
//	@Summary      Delete product
//	@Tags         catalog
//	@Security     BearerAuth
//	@Param        id  path  string  true  "Product UUID"
//	@Success      204  {string}  string  "no content"
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/products/{id} [delete]
func DeleteProductHandler(client *ent.Client, pub mqx.Publisher, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid product id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		p, err := client.Product.Query().Where(product.IDEQ(id)).WithSeller().Only(ctx)
		if err != nil {
			return kit.NotFound("product not found")
		}
		if !isAdmin(c) {
			owner, err := p.Edges.Seller.QueryUser().Only(ctx)
			if err != nil || owner.ID != uid {
				return fiber.ErrForbidden
			}
		}
		if err := client.Product.DeleteOneID(id).Exec(ctx); err != nil {
			return kit.InternalError("delete product failed", err.Error())
		}
		if es != nil {
			_ = esx.DeleteProduct(ctx, es, esx.ProductsIndex, id.String())
		}
		mqx.Emit(ctx, pub, "product.deleted", map[string]any{"product_id": id.String()})
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SearchProductsHandler performs full-text product search via Elasticsearch.
// Without a configured ES client the result set is empty rather than an error.
//
//	@Summary      Search products
//	@Tags         catalog
//	@Produce      json
//	@Param        q       query  string  true   "query text"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/search/products [get]
func SearchProductsHandler(es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			return kit.BadRequest("q required", nil)
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		if es == nil {
			return kit.List(c, []any{}, kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Mode: "offset"})
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		res, err := esx.SearchProducts(ctx, es, esx.ProductsIndex, q, pg.Offset, pg.Limit)
		if err != nil {
			return kit.InternalError("search failed", nil)
		}
		return kit.OK(c, res)
	}
}

func productDoc(p *ent.Product, sellerID, categoryID uuid.UUID) esx.ProductDoc {
	return esx.ProductDoc{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SellerID:    sellerID.String(),
		CategoryID:  categoryID.String(),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
