// Package users provides HTTP handlers for the user profile, the address
// book and notifications.
package users

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/notification"
	entuser "fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/ent/useraddress"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
)

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	ac, _ := c.Locals("auth").(*mw.AuthContext)
	uid, ok := ac.UserID()
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uid, nil
}

// GetMeHandler returns the current user's profile with linked accounts.
//
//	@Summary      Get my profile
//	@Tags         users
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/users/me [get]
func GetMeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		u, err := client.User.Query().
			Where(entuser.IDEQ(uid)).
			WithTelegramAccount().
			WithSeller().
			Only(ctx)
		if err != nil {
			return kit.NotFound("user not found")
		}
		return kit.OK(c, u)
	}
}

// UpdateMeHandler updates the current user's profile fields.
//
//	@Summary      Update my profile
//	@Tags         users
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  users.UpdateProfileRequest  true  "profile"
//	@Success      200   {object}  map[string]interface{}
//	@Router       /api/v1/users/me [patch]
func UpdateMeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		upd := client.User.UpdateOneID(uid)
		if req.DisplayName != nil {
			upd = upd.SetDisplayName(strings.TrimSpace(*req.DisplayName))
		}
		if req.Bio != nil {
			upd = upd.SetBio(*req.Bio)
		}
		if req.AvatarURL != nil {
			upd = upd.SetAvatarURL(*req.AvatarURL)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update profile failed", err.Error())
		}
		return kit.OK(c, saved)
	}
}

// ListAddressesHandler lists the current user's addresses, default first.
//
//	@Summary      List my addresses
//	@Tags         users
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/users/me/addresses [get]
func ListAddressesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		items, err := client.UserAddress.Query().
			Where(useraddress.HasUserWith(entuser.IDEQ(uid))).
			Order(ent.Desc(useraddress.FieldIsDefault), ent.Desc(useraddress.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query addresses failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// CreateAddressHandler adds an address. Setting is_default clears the flag on
// the others.
//
//	@Summary      Create address
//	@Tags         users
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  users.AddressRequest  true  "address"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/users/me/addresses [post]
func CreateAddressHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req AddressRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.Street) == "" {
			return kit.BadRequest("city and street required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		tx, err := client.Tx(ctx)
		if err != nil {
			return kit.InternalError("begin tx failed", err.Error())
		}
		defer func() { _ = tx.Rollback() }()

		if req.IsDefault {
			if err := tx.UserAddress.Update().
				Where(useraddress.HasUserWith(entuser.IDEQ(uid))).
				SetIsDefault(false).
				Exec(ctx); err != nil {
				return kit.InternalError("clear default address failed", err.Error())
			}
		}
		cr := tx.UserAddress.Create().
			SetCity(strings.TrimSpace(req.City)).
			SetStreet(strings.TrimSpace(req.Street)).
			SetBuilding(req.Building).
			SetApartment(req.Apartment).
			SetPostalCode(req.PostalCode).
			SetIsDefault(req.IsDefault).
			SetUserID(uid)
		if req.Label != "" {
			cr = cr.SetLabel(req.Label)
		}
		created, err := cr.Save(ctx)
		if err != nil {
			return kit.InternalError("create address failed", err.Error())
		}
		if err := tx.Commit(); err != nil {
			return kit.InternalError("commit failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// UpdateAddressHandler updates one of the current user's addresses.
//
//	@Summary      Update address
//	@Tags         users
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string  true  "Address UUID"
//	@Param        body  body  users.AddressRequest  true  "address"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/users/me/addresses/{id} [patch]
func UpdateAddressHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid address id", c.Params("id"))
		}
		var req AddressRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		owned, err := client.UserAddress.Query().
			Where(useraddress.IDEQ(id), useraddress.HasUserWith(entuser.IDEQ(uid))).
			Exist(ctx)
		if err != nil || !owned {
			return kit.NotFound("address not found")
		}

		tx, err := client.Tx(ctx)
		if err != nil {
			return kit.InternalError("begin tx failed", err.Error())
		}
		defer func() { _ = tx.Rollback() }()

		if req.IsDefault {
			if err := tx.UserAddress.Update().
				Where(useraddress.HasUserWith(entuser.IDEQ(uid))).
				SetIsDefault(false).
				Exec(ctx); err != nil {
				return kit.InternalError("clear default address failed", err.Error())
			}
		}
		upd := tx.UserAddress.UpdateOneID(id).SetIsDefault(req.IsDefault)
		if req.Label != "" {
			upd = upd.SetLabel(req.Label)
		}
		if req.City != "" {
			upd = upd.SetCity(strings.TrimSpace(req.City))
		}
		if req.Street != "" {
			upd = upd.SetStreet(strings.TrimSpace(req.Street))
		}
		if req.Building != "" {
			upd = upd.SetBuilding(req.Building)
		}
		if req.Apartment != "" {
			upd = upd.SetApartment(req.Apartment)
		}
		if req.PostalCode != "" {
			upd = upd.SetPostalCode(req.PostalCode)
		}
		saved, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update address failed", err.Error())
		}
		if err := tx.Commit(); err != nil {
			return kit.InternalError("commit failed", err.Error())
		}
		return kit.OK(c, saved)
	}
}

// DeleteAddressHandler removes one of the current user's addresses.
//
//	@Summary      Delete address
//	@Tags         users
//	@Security     BearerAuth
//	@Param        id  path  string  true  "Address UUID"
//	@Success      204  {string}  string  "no content"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/users/me/addresses/{id} [delete]
func DeleteAddressHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid address id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		n, err := client.UserAddress.Delete().
			Where(useraddress.IDEQ(id), useraddress.HasUserWith(entuser.IDEQ(uid))).
			Exec(ctx)
		if err != nil {
			return kit.InternalError("delete address failed", err.Error())
		}
		if n == 0 {
			return kit.NotFound("address not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListNotificationsHandler lists the current user's notifications, newest first.
//
//	@Summary      List notifications
//	@Tags         users
//	@Produce      json
//	@Security     BearerAuth
//	@Param        unread  query  bool  false  "only unread"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/users/me/notifications [get]
func ListNotificationsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		q := client.Notification.Query().Where(notification.HasUserWith(entuser.IDEQ(uid)))
		if c.QueryBool("unread", false) {
			q = q.Where(notification.IsReadEQ(false))
		}
		items, err := q.
			Order(ent.Desc(notification.FieldCreatedAt)).
			Limit(pg.Limit).
			Offset(pg.Offset).
			All(ctx)
		if err != nil {
			return kit.InternalError("query notifications failed", err.Error())
		}
		nextOff := pg.Offset + len(items)
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: &nextOff, HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// MarkNotificationReadHandler marks one notification as read.
//
//	@Summary      Mark notification read
//	@Tags         users
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id  path  string  true  "Notification UUID"
//	@Success      204  {string}  string  "no content"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/users/me/notifications/{id}/read [post]
func MarkNotificationReadHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid notification id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		n, err := client.Notification.Update().
			Where(notification.IDEQ(id), notification.HasUserWith(entuser.IDEQ(uid))).
			SetIsRead(true).
			Save(ctx)
		if err != nil {
			return kit.InternalError("mark read failed", err.Error())
		}
		if n == 0 {
			return kit.NotFound("notification not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
