package subscriptions

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
	"fiber-ent-market-pg/ent/sellersubscription"
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

func subsApp(client *ent.Client, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
			return c.Next()
		})
		app.Get("/subscriptions/tiers", ListTiersHandler(client))
		app.Post("/subscriptions", SubscribeHandler(client, nil))
		app.Get("/subscriptions/current", CurrentSubscriptionHandler(client))
		app.Delete("/subscriptions/current", CancelSubscriptionHandler(client, nil))
	})
}

func seedSellerAndTier(t *testing.T, client *ent.Client) (*ent.User, *ent.Seller, *ent.SubscriptionTier) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := client.User.Create().SetUsername("merchant").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	s, err := client.Seller.Create().SetName("merchant shop").SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("create seller: %v", err)
	}
	tier, err := client.SubscriptionTier.Create().
		SetName("pro").
		SetPrice(990).
		SetMaxProducts(100).
		SetMaxContactMethods(3).
		SetMaxBanners(5).
		Save(ctx)
	if err != nil {
		t.Fatalf("create tier: %v", err)
	}
	return u, s, tier
}

func postSubscribe(t *testing.T, app *fiber.App, body SubscribeRequest) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestSubscribe_DeactivatesPriorRows(t *testing.T) {
	client := newTestClient(t)
	u, _, tier := seedSellerAndTier(t, client)
	app := subsApp(client, u.ID)

	if res := postSubscribe(t, app, SubscribeRequest{TierID: tier.ID, Months: 1}); res.StatusCode != http.StatusCreated {
		t.Fatalf("first: status=%d", res.StatusCode)
	}
	if res := postSubscribe(t, app, SubscribeRequest{TierID: tier.ID, Months: 6}); res.StatusCode != http.StatusCreated {
		t.Fatalf("second: status=%d", res.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	active, err := client.SellerSubscription.Query().
		Where(sellersubscription.IsActiveEQ(true)).
		Count(ctx)
	if err != nil || active != 1 {
		t.Fatalf("active=%d err=%v", active, err)
	}
}

func TestSubscribe_InvalidMonths(t *testing.T) {
	client := newTestClient(t)
	u, _, tier := seedSellerAndTier(t, client)
	app := subsApp(client, u.ID)

	for _, months := range []int{0, 25} {
		if res := postSubscribe(t, app, SubscribeRequest{TierID: tier.ID, Months: months}); res.StatusCode != http.StatusBadRequest {
			t.Fatalf("months=%d: status=%d", months, res.StatusCode)
		}
	}
}

func TestSubscribe_UnknownTier(t *testing.T) {
	client := newTestClient(t)
	u, _, _ := seedSellerAndTier(t, client)
	app := subsApp(client, u.ID)

	if res := postSubscribe(t, app, SubscribeRequest{TierID: uuid.New(), Months: 1}); res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestCancelSubscription(t *testing.T) {
	client := newTestClient(t)
	u, _, tier := seedSellerAndTier(t, client)
	app := subsApp(client, u.ID)

	if res := postSubscribe(t, app, SubscribeRequest{TierID: tier.ID, Months: 1}); res.StatusCode != http.StatusCreated {
		t.Fatalf("subscribe: status=%d", res.StatusCode)
	}
	res, err := app.Test(httptest.NewRequest(http.MethodDelete, "/subscriptions/current", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("cancel: status=%d", res.StatusCode)
	}
	// nothing left to cancel
	res, err = app.Test(httptest.NewRequest(http.MethodDelete, "/subscriptions/current", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("second cancel: status=%d", res.StatusCode)
	}
}

func TestEffectiveLimits_FreeWithoutSubscription(t *testing.T) {
	client := newTestClient(t)
	_, s, _ := seedSellerAndTier(t, client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	limits, err := EffectiveLimits(ctx, client, s.ID)
	if err != nil {
		t.Fatalf("limits: %v", err)
	}
	if limits.MaxProducts != FreeMaxProducts || limits.MaxContactMethods != FreeMaxContactMethods || limits.MaxBanners != FreeMaxBanners {
		t.Fatalf("unexpected limits: %+v", limits)
	}
}

func TestEffectiveLimits_PaidTierApplies(t *testing.T) {
	client := newTestClient(t)
	_, s, tier := seedSellerAndTier(t, client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	now := time.Now().UTC()
	_, err := client.SellerSubscription.Create().
		SetSeller(s).
		SetTier(tier).
		SetStartsAt(now.AddDate(0, -1, 0)).
		SetEndsAt(now.AddDate(0, 1, 0)).
		SetIsActive(true).
		SetPaymentStatus(sellersubscription.PaymentStatusPaid).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	limits, err := EffectiveLimits(ctx, client, s.ID)
	if err != nil {
		t.Fatalf("limits: %v", err)
	}
	if limits.MaxProducts != 100 || limits.MaxBanners != 5 {
		t.Fatalf("unexpected limits: %+v", limits)
	}
}

func TestEffectiveLimits_ExpiredSubscriptionIgnored(t *testing.T) {
	client := newTestClient(t)
	_, s, tier := seedSellerAndTier(t, client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	now := time.Now().UTC()
	_, err := client.SellerSubscription.Create().
		SetSeller(s).
		SetTier(tier).
		SetStartsAt(now.AddDate(0, -2, 0)).
		SetEndsAt(now.AddDate(0, -1, 0)).
		SetIsActive(true).
		SetPaymentStatus(sellersubscription.PaymentStatusPaid).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	limits, err := EffectiveLimits(ctx, client, s.ID)
	if err != nil {
		t.Fatalf("limits: %v", err)
	}
	if limits.MaxProducts != FreeMaxProducts {
		t.Fatalf("unexpected limits: %+v", limits)
	}
}
