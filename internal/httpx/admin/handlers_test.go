package admin

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
	entuser "fiber-ent-market-pg/ent/user"
	testutil "fiber-ent-market-pg/internal/httpx/kit/testutil"
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

func adminApp(client *ent.Client) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/users/:id/promote", PromoteUserHandler(client))
		app.Get("/stats", StatsHandler(client))
		app.Post("/tiers", CreateTierHandler(client))
		app.Patch("/tiers/:id", UpdateTierHandler(client))
		app.Delete("/tiers/:id", DeleteTierHandler(client))
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

func TestPromoteUser(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("regular").Save(ctx)
	app := adminApp(client)

	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/users/"+u.ID.String()+"/promote", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	got, err := client.User.Get(ctx, u.ID)
	if err != nil || got.Type != entuser.TypeAdmin {
		t.Fatalf("type=%v err=%v", got.Type, err)
	}
}

func TestPromoteUser_UnknownID(t *testing.T) {
	client := newTestClient(t)
	app := adminApp(client)
	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/users/"+uuid.NewString()+"/promote", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestStats(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("solo").Save(ctx)
	_, err := client.Seller.Create().SetName("solo shop").SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("seed seller: %v", err)
	}
	app := adminApp(client)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/stats", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data map[string]int `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data["users"] != 1 || env.Data["sellers"] != 1 || env.Data["products"] != 0 {
		t.Fatalf("unexpected stats: %+v", env.Data)
	}
}

func TestTierCRUD(t *testing.T) {
	client := newTestClient(t)
	app := adminApp(client)

	res := doJSON(t, app, http.MethodPost, "/tiers", TierRequest{
		Name: "start", Price: 290, MaxProducts: 10, MaxContactMethods: 2, MaxBanners: 1,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create: status=%d", res.StatusCode)
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// duplicate tier name rejected
	res = doJSON(t, app, http.MethodPost, "/tiers", TierRequest{Name: "start", Price: 1})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate: status=%d", res.StatusCode)
	}

	res = doJSON(t, app, http.MethodPatch, "/tiers/"+created.Data.ID, TierRequest{
		Name: "start", Price: 390, MaxProducts: 15, MaxContactMethods: 2, MaxBanners: 1,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update: status=%d", res.StatusCode)
	}

	req := httptest.NewRequest(http.MethodDelete, "/tiers/"+created.Data.ID, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: status=%d", resp.StatusCode)
	}
}

func TestCreateTier_NegativeValuesRejected(t *testing.T) {
	client := newTestClient(t)
	app := adminApp(client)

	res := doJSON(t, app, http.MethodPost, "/tiers", TierRequest{Name: "broken", Price: -1})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
