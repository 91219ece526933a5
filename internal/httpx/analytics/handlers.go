// Package analytics records tracking events and serves admin aggregates.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/analyticsevent"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/mw"
)

// TrackEventRequest is the request body for tracking an event
// swagger:model TrackEventRequest
type TrackEventRequest struct {
	EventType string         `json:"event_type"`
	SellerID  *uuid.UUID     `json:"seller_id,omitempty"`
	ProductID *uuid.UUID     `json:"product_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// TrackEventHandler stores one analytics event. Works with or without auth;
// an authenticated user is attached to the event.
//
//	@Summary      Track event
//	@Tags         analytics
//	@Accept       json
//	@Produce      json
//	@Param        body  body  analytics.TrackEventRequest  true  "event"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/events [post]
func TrackEventHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req TrackEventRequest
		if err := c.BodyParser(&req); err != nil || req.EventType == "" {
			return kit.BadRequest("event_type required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		cr := client.AnalyticsEvent.Create().
			SetEventType(req.EventType).
			SetNillableSellerID(req.SellerID).
			SetNillableProductID(req.ProductID)
		if req.Metadata != nil {
			cr = cr.SetMetadata(req.Metadata)
		}
		ac, _ := c.Locals("auth").(*mw.AuthContext)
		if uid, ok := ac.UserID(); ok {
			cr = cr.SetUserID(uid)
		}
		created, err := cr.Save(ctx)
		if err != nil {
			return kit.InternalError("track event failed", err.Error())
		}
		return kit.Created(c, fiber.Map{"id": created.ID})
	}
}

// DayBucket is one per-day aggregate row
type DayBucket struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// TypeBucket is one per-type aggregate row
type TypeBucket struct {
	EventType string `json:"event_type"`
	Count     int    `json:"count"`
}

// AnalyticsHandler aggregates events by day and by type inside a window.
// Admin only (route-guarded).
//
//	@Summary      Analytics aggregates
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Param        days        query  int     false  "window in days"  default(30)
//	@Param        seller_id   query  string  false  "filter by seller"
//	@Param        event_type  query  string  false  "filter by type"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/admin/analytics [get]
func AnalyticsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 30)
		if days < 1 || days > 365 {
			return kit.BadRequest("days must be between 1 and 365", days)
		}
		since := time.Now().UTC().AddDate(0, 0, -days)

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		q := client.AnalyticsEvent.Query().Where(analyticsevent.CreatedAtGTE(since))
		if v := c.Query("seller_id"); v != "" {
			sid, err := uuid.Parse(v)
			if err != nil {
				return kit.BadRequest("invalid seller_id", v)
			}
			q = q.Where(analyticsevent.SellerIDEQ(sid))
		}
		if v := c.Query("event_type"); v != "" {
			q = q.Where(analyticsevent.EventTypeEQ(v))
		}

		events, err := q.All(ctx)
		if err != nil {
			return kit.InternalError("query events failed", err.Error())
		}

		byDay := map[string]int{}
		byType := map[string]int{}
		for _, e := range events {
			byDay[e.CreatedAt.UTC().Format("2006-01-02")]++
			byType[e.EventType]++
		}
		return kit.OK(c, fiber.Map{
			"total":   len(events),
			"by_day":  bucketDays(byDay),
			"by_type": bucketTypes(byType),
		})
	}
}

func bucketDays(m map[string]int) []DayBucket {
	out := make([]DayBucket, 0, len(m))
	for d, n := range m {
		out = append(out, DayBucket{Day: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func bucketTypes(m map[string]int) []TypeBucket {
	out := make([]TypeBucket, 0, len(m))
	for t, n := range m {
		out = append(out, TypeBucket{EventType: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
