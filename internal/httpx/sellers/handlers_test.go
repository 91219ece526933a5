package sellers

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
	"github.com/samber/lo"
	_ "modernc.org/sqlite"

	"fiber-ent-market-pg/ent"
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

func sellerApp(client *ent.Client, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			if uid != uuid.Nil {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
			}
			return c.Next()
		})
		app.Get("/sellers", ListSellersHandler(client))
		app.Get("/sellers/:id", GetSellerHandler(client))
		app.Post("/sellers", BecomeSellerHandler(client))
		app.Patch("/sellers/me", UpdateSellerHandler(client))
	})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestBecomeSeller(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("newbie").Save(ctx)
	app := sellerApp(client, u.ID)

	res := doJSON(t, app, http.MethodPost, "/sellers", BecomeSellerRequest{
		Name:         "newbie crafts",
		ContactPhone: "+79000000000",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
	// second profile for the same user rejected
	res = doJSON(t, app, http.MethodPost, "/sellers", BecomeSellerRequest{Name: "another"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate: status=%d", res.StatusCode)
	}
}

func TestBecomeSeller_ContactCapOnFreeTier(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("chatty").Save(ctx)
	app := sellerApp(client, u.ID)

	res := doJSON(t, app, http.MethodPost, "/sellers", BecomeSellerRequest{
		Name:         "chatty goods",
		ContactPhone: "+79000000001",
		ContactEmail: "chatty@example.com",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestUpdateSeller_ContactCapEnforced(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("grower").Save(ctx)
	_, err := client.Seller.Create().SetName("grower shop").SetContactPhone("+79000000002").SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("seed seller: %v", err)
	}
	app := sellerApp(client, u.ID)

	// adding a second contact method exceeds the free tier cap
	res := doJSON(t, app, http.MethodPatch, "/sellers/me", UpdateSellerRequest{
		ContactEmail: lo.ToPtr("grower@example.com"),
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}

	// swapping the single contact method is fine
	res = doJSON(t, app, http.MethodPatch, "/sellers/me", UpdateSellerRequest{
		ContactPhone: lo.ToPtr(""),
		ContactEmail: lo.ToPtr("grower@example.com"),
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("swap: status=%d", res.StatusCode)
	}
}

func TestUpdateSeller_WithoutProfileForbidden(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("lurker").Save(ctx)
	app := sellerApp(client, u.ID)

	res := doJSON(t, app, http.MethodPatch, "/sellers/me", UpdateSellerRequest{Name: lo.ToPtr("nope")})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestListSellers_DefaultRatingOrder(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i, rating := range []float64{2.5, 4.8, 3.1} {
		u, _ := client.User.Create().SetUsername(fmt.Sprintf("seller%d", i)).Save(ctx)
		_, err := client.Seller.Create().
			SetName(fmt.Sprintf("shop %d", i)).
			SetRating(rating).
			SetUser(u).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed seller: %v", err)
		}
	}
	app := sellerApp(client, uuid.Nil)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sellers", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data []struct {
			Rating float64 `json:"rating"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 3 {
		t.Fatalf("sellers=%d", len(env.Data))
	}
	if env.Data[0].Rating != 4.8 || env.Data[2].Rating != 2.5 {
		t.Fatalf("unexpected order: %+v", env.Data)
	}
}

func TestGetSeller_NotFound(t *testing.T) {
	client := newTestClient(t)
	app := sellerApp(client, uuid.Nil)
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sellers/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
