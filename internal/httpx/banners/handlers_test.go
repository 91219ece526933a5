package banners

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

func bannerApp(client *ent.Client, uid uuid.UUID, roles ...string) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			if uid != uuid.Nil {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user", Roles: roles})
			}
			return c.Next()
		})
		app.Get("/banners", ListActiveBannersHandler(client))
		app.Post("/banners", CreateBannerHandler(client))
		app.Patch("/banners/:id", UpdateBannerHandler(client))
		app.Delete("/banners/:id", DeleteBannerHandler(client))
	})
}

func seedPaidSeller(t *testing.T, client *ent.Client, maxBanners int) (*ent.User, *ent.Seller) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := client.User.Create().SetUsername("advertiser").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	s, err := client.Seller.Create().SetName("ad shop").SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("create seller: %v", err)
	}
	tier, err := client.SubscriptionTier.Create().
		SetName("promo").
		SetPrice(500).
		SetMaxProducts(50).
		SetMaxContactMethods(3).
		SetMaxBanners(maxBanners).
		Save(ctx)
	if err != nil {
		t.Fatalf("create tier: %v", err)
	}
	now := time.Now().UTC()
	_, err = client.SellerSubscription.Create().
		SetSeller(s).
		SetTier(tier).
		SetStartsAt(now).
		SetEndsAt(now.AddDate(0, 1, 0)).
		SetIsActive(true).
		SetPaymentStatus(sellersubscription.PaymentStatusPaid).
		Save(ctx)
	if err != nil {
		t.Fatalf("create subscription: %v", err)
	}
	return u, s
}

func postBanner(t *testing.T, app *fiber.App, body CreateBannerRequest) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/banners", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestCreateBanner_FreeTierBlocked(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("freebie").Save(ctx)
	_, err := client.Seller.Create().SetName("free shop").SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("seed seller: %v", err)
	}
	app := bannerApp(client, u.ID)

	now := time.Now().UTC()
	res := postBanner(t, app, CreateBannerRequest{
		ImageURL: "https://cdn.example.com/b.png",
		StartsAt: now,
		EndsAt:   now.Add(24 * time.Hour),
	})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestCreateBanner_PaidTierAllows(t *testing.T) {
	client := newTestClient(t)
	u, _ := seedPaidSeller(t, client, 2)
	app := bannerApp(client, u.ID)

	now := time.Now().UTC()
	res := postBanner(t, app, CreateBannerRequest{
		ImageURL:  "https://cdn.example.com/b.png",
		Placement: "catalog",
		StartsAt:  now.Add(-time.Hour),
		EndsAt:    now.Add(24 * time.Hour),
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Placement string `json:"placement"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Placement != "catalog" {
		t.Fatalf("placement=%s", env.Data.Placement)
	}
}

func TestCreateBanner_WindowValidation(t *testing.T) {
	client := newTestClient(t)
	u, _ := seedPaidSeller(t, client, 2)
	app := bannerApp(client, u.ID)

	now := time.Now().UTC()
	res := postBanner(t, app, CreateBannerRequest{
		ImageURL: "https://cdn.example.com/b.png",
		StartsAt: now,
		EndsAt:   now.Add(-time.Hour),
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestListActiveBanners_WindowFilter(t *testing.T) {
	client := newTestClient(t)
	_, s := seedPaidSeller(t, client, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	now := time.Now().UTC()
	// live banner
	_, err := client.Banner.Create().
		SetImageURL("https://cdn.example.com/live.png").
		SetStartsAt(now.Add(-time.Hour)).
		SetEndsAt(now.Add(time.Hour)).
		SetSeller(s).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed banner: %v", err)
	}
	// expired banner
	_, err = client.Banner.Create().
		SetImageURL("https://cdn.example.com/old.png").
		SetStartsAt(now.Add(-48 * time.Hour)).
		SetEndsAt(now.Add(-24 * time.Hour)).
		SetSeller(s).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed banner: %v", err)
	}
	// not started yet
	_, err = client.Banner.Create().
		SetImageURL("https://cdn.example.com/future.png").
		SetStartsAt(now.Add(24 * time.Hour)).
		SetEndsAt(now.Add(48 * time.Hour)).
		SetSeller(s).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed banner: %v", err)
	}

	app := bannerApp(client, uuid.Nil)
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/banners", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var env struct {
		Data []struct {
			ImageURL string `json:"image_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].ImageURL != "https://cdn.example.com/live.png" {
		t.Fatalf("unexpected banners: %+v", env.Data)
	}
}

func TestDeleteBanner_AdminOverridesOwnership(t *testing.T) {
	client := newTestClient(t)
	_, s := seedPaidSeller(t, client, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	now := time.Now().UTC()
	b, err := client.Banner.Create().
		SetImageURL("https://cdn.example.com/x.png").
		SetStartsAt(now).
		SetEndsAt(now.Add(time.Hour)).
		SetSeller(s).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed banner: %v", err)
	}
	admin, _ := client.User.Create().SetUsername("moderator").SetType("admin").Save(ctx)

	app := bannerApp(client, admin.ID, "admin")
	res, err := app.Test(httptest.NewRequest(http.MethodDelete, "/banners/"+b.ID.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
