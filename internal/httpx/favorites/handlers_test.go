package favorites

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

func favApp(client *ent.Client, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
			return c.Next()
		})
		app.Get("/favorites", ListFavoritesHandler(client))
		app.Post("/favorites/toggle", ToggleFavoriteHandler(client))
	})
}

func toggle(t *testing.T, app *fiber.App, body ToggleFavoriteRequest) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/favorites/toggle", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func favorited(t *testing.T, res *http.Response) bool {
	t.Helper()
	var env struct {
		Data struct {
			Favorited bool `json:"favorited"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data.Favorited
}

func TestToggleFavorite_ProductOnOff(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("collector").Save(ctx)
	owner, _ := client.User.Create().SetUsername("vendor").Save(ctx)
	s, _ := client.Seller.Create().SetName("vendor shop").SetUser(owner).Save(ctx)
	cat, _ := client.Category.Create().SetName("curios").Save(ctx)
	p, err := client.Product.Create().SetName("orb").SetPrice(3).SetSeller(s).SetCategory(cat).Save(ctx)
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	app := favApp(client, u.ID)

	res := toggle(t, app, ToggleFavoriteRequest{ProductID: lo.ToPtr(p.ID)})
	if res.StatusCode != http.StatusOK || !favorited(t, res) {
		t.Fatalf("expected favorited=true, status=%d", res.StatusCode)
	}
	res = toggle(t, app, ToggleFavoriteRequest{ProductID: lo.ToPtr(p.ID)})
	if res.StatusCode != http.StatusOK || favorited(t, res) {
		t.Fatalf("expected favorited=false, status=%d", res.StatusCode)
	}
	if n, err := client.Favorite.Query().Count(ctx); err != nil || n != 0 {
		t.Fatalf("favorites=%d err=%v", n, err)
	}
}

func TestToggleFavorite_SellerTarget(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("fan").Save(ctx)
	owner, _ := client.User.Create().SetUsername("maker").Save(ctx)
	s, _ := client.Seller.Create().SetName("maker shop").SetUser(owner).Save(ctx)
	app := favApp(client, u.ID)

	res := toggle(t, app, ToggleFavoriteRequest{SellerID: lo.ToPtr(s.ID)})
	if res.StatusCode != http.StatusOK || !favorited(t, res) {
		t.Fatalf("expected favorited=true, status=%d", res.StatusCode)
	}

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/favorites", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var env struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 {
		t.Fatalf("favorites=%d", len(env.Data))
	}
}

func TestToggleFavorite_ExactlyOneTarget(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("picky").Save(ctx)
	app := favApp(client, u.ID)

	if res := toggle(t, app, ToggleFavoriteRequest{}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("neither: status=%d", res.StatusCode)
	}
	both := ToggleFavoriteRequest{ProductID: lo.ToPtr(uuid.New()), SellerID: lo.ToPtr(uuid.New())}
	if res := toggle(t, app, both); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("both: status=%d", res.StatusCode)
	}
}

func TestToggleFavorite_UnknownProduct(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("ghosthunter").Save(ctx)
	app := favApp(client, u.ID)

	res := toggle(t, app, ToggleFavoriteRequest{ProductID: lo.ToPtr(uuid.New())})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
