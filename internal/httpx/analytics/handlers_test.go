package analytics

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/analyticsevent"
	testutil "fiber-ent-market-pg/internal/httpx/kit/testutil"
	"fiber-ent-market-pg/internal/httpx/mw"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func trackApp(client *ent.Client, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			if uid != uuid.Nil {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
			}
			return c.Next()
		})
		app.Post("/events", TrackEventHandler(client))
		app.Get("/analytics", AnalyticsHandler(client))
	})
}

func track(t *testing.T, app *fiber.App, body TrackEventRequest) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestTrackEvent_AnonymousAndAuthed(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("visitor").Save(ctx)

	// anonymous
	res := track(t, trackApp(client, uuid.Nil), TrackEventRequest{EventType: "product_view"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("anon: status=%d", res.StatusCode)
	}
	// authed carries the user id
	res = track(t, trackApp(client, u.ID), TrackEventRequest{EventType: "product_view"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("authed: status=%d", res.StatusCode)
	}

	withUser, err := client.AnalyticsEvent.Query().Where(analyticsevent.UserIDNotNil()).Count(ctx)
	if err != nil || withUser != 1 {
		t.Fatalf("events with user=%d err=%v", withUser, err)
	}
}

func TestTrackEvent_TypeRequired(t *testing.T) {
	client := newTestClient(t)
	res := track(t, trackApp(client, uuid.Nil), TrackEventRequest{})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestAnalytics_Aggregates(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sid := uuid.New()
	for _, et := range []string{"product_view", "product_view", "seller_contact"} {
		_, err := client.AnalyticsEvent.Create().SetEventType(et).SetSellerID(sid).Save(ctx)
		if err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}
	app := trackApp(client, uuid.Nil)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/analytics?days=7&seller_id="+sid.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Total  int          `json:"total"`
			ByDay  []DayBucket  `json:"by_day"`
			ByType []TypeBucket `json:"by_type"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Total != 3 || len(env.Data.ByDay) != 1 {
		t.Fatalf("unexpected aggregates: %+v", env.Data)
	}
	// most frequent type first
	if len(env.Data.ByType) != 2 || env.Data.ByType[0].EventType != "product_view" || env.Data.ByType[0].Count != 2 {
		t.Fatalf("unexpected by_type: %+v", env.Data.ByType)
	}
}

func TestAnalytics_DaysValidation(t *testing.T) {
	client := newTestClient(t)
	app := trackApp(client, uuid.Nil)
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/analytics?days=0", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
