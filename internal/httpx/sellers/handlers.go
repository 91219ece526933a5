// Package sellers provides HTTP handlers for seller profiles.
package sellers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/seller"
	entuser "fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
	"fiber-ent-market-pg/internal/httpx/subscriptions"
)

// BecomeSellerRequest is the request body for creating a seller profile
// swagger:model BecomeSellerRequest
type BecomeSellerRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Image            string `json:"image,omitempty"`
	ContactPhone     string `json:"contact_phone,omitempty"`
	ContactEmail     string `json:"contact_email,omitempty"`
	TelegramUsername string `json:"telegram_username,omitempty"`
}

// UpdateSellerRequest is the request body for updating a seller profile
// swagger:model UpdateSellerRequest
type UpdateSellerRequest struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	Image            *string `json:"image,omitempty"`
	ContactPhone     *string `json:"contact_phone,omitempty"`
	ContactEmail     *string `json:"contact_email,omitempty"`
	TelegramUsername *string `json:"telegram_username,omitempty"`
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	ac, _ := c.Locals("auth").(*mw.AuthContext)
	uid, ok := ac.UserID()
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uid, nil
}

func contactMethodCount(phone, email, tg string) int {
	n := 0
	for _, v := range []string{phone, email, tg} {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

// ListSellersHandler lists sellers with sorting and paging.
//
//	@Summary      List sellers
//	@Tags         sellers
//	@Produce      json
//	@Param        sort    query  string  false  "field:dir, e.g. rating:desc"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/sellers [get]
func ListSellersHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		q := client.Seller.Query()
		q, err = kit.ApplySellerSort(q, pg.Sort)
		if err != nil {
			return err
		}
		if pg.Sort == "" {
			q = q.Order(ent.Desc(seller.FieldRating))
		}
		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query sellers failed", err.Error())
		}
		nextOff := pg.Offset + len(items)
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: &nextOff, HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// GetSellerHandler returns one seller with its products.
//
//	@Summary      Get seller
//	@Tags         sellers
//	@Produce      json
//	@Param        id  path  string  true  "Seller UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/sellers/{id} [get]
func GetSellerHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid seller id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		s, err := client.Seller.Query().
			Where(seller.IDEQ(id)).
			WithProducts(func(q *ent.ProductQuery) { q.WithCategory() }).
			Only(ctx)
		if err != nil {
			return kit.NotFound("seller not found")
		}
		return kit.OK(c, s)
	}
}

// BecomeSellerHandler creates a seller profile for the current user. One
// profile per user; contact methods are capped by the tier.
//
//	@Summary      Become a seller
//	@Tags         sellers
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  sellers.BecomeSellerRequest  true  "seller profile"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/sellers [post]
func BecomeSellerHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req BecomeSellerRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name required", nil)
		}
		if contactMethodCount(req.ContactPhone, req.ContactEmail, req.TelegramUsername) > subscriptions.FreeMaxContactMethods {
			return kit.BadRequest("too many contact methods for free tier", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		exists, err := client.Seller.Query().Where(seller.HasUserWith(entuser.IDEQ(uid))).Exist(ctx)
		if err != nil {
			return kit.InternalError("query seller failed", err.Error())
		}
		if exists {
			return kit.BadRequest("seller profile already exists", nil)
		}

		created, err := client.Seller.Create().
			SetName(strings.TrimSpace(req.Name)).
			SetDescription(req.Description).
			SetImage(req.Image).
			SetContactPhone(req.ContactPhone).
			SetContactEmail(req.ContactEmail).
			SetTelegramUsername(req.TelegramUsername).
			SetUserID(uid).
			Save(ctx)
		if err != nil {
			return kit.InternalError("create seller failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// UpdateSellerHandler updates the current user's seller profile.
//
//	@Summary      Update own seller profile
//	@Tags         sellers
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  sellers.UpdateSellerRequest  true  "seller profile"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Router       /api/v1/sellers/me [patch]
func UpdateSellerHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req UpdateSellerRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		s, err := client.Seller.Query().Where(seller.HasUserWith(entuser.IDEQ(uid))).Only(ctx)
		if err != nil {
			return kit.Forbidden("seller account required")
		}

		phone := s.ContactPhone
		email := s.ContactEmail
		tg := s.TelegramUsername
		if req.ContactPhone != nil {
			phone = *req.ContactPhone
		}
		if req.ContactEmail != nil {
			email = *req.ContactEmail
		}
		if req.TelegramUsername != nil {
			tg = *req.TelegramUsername
		}
		limits, err := subscriptions.EffectiveLimits(ctx, client, s.ID)
		if err != nil {
			return kit.InternalError("resolve tier limits failed", err.Error())
		}
		if contactMethodCount(phone, email, tg) > limits.MaxContactMethods {
			return kit.BadRequest("too many contact methods for current subscription tier", nil)
		}

		upd := client.Seller.UpdateOneID(s.ID)
		if req.Name != nil {
			upd = upd.SetName(strings.TrimSpace(*req.Name))
		}
		if req.Description != nil {
			upd = upd.SetDescription(*req.Description)
		}
		if req.Image != nil {
			upd = upd.SetImage(*req.Image)
		}
		if req.ContactPhone != nil {
			upd = upd.SetContactPhone(phone)
		}
		if req.ContactEmail != nil {
			upd = upd.SetContactEmail(email)
		}
		if req.TelegramUsername != nil {
			upd = upd.SetTelegramUsername(tg)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update seller failed", err.Error())
		}
		return kit.OK(c, saved)
	}
}
