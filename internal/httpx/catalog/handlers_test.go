package catalog

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
	"fiber-ent-market-pg/internal/httpx/kit"
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

// newAuthedApp injects an auth context for uid on every request before
// mounting the given routes.
func newAuthedApp(uid uuid.UUID, roles []string, mounts ...func(*fiber.App)) *fiber.App {
	pre := func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			if uid != uuid.Nil {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user", Roles: roles})
			}
			return c.Next()
		})
	}
	return testutil.NewApp(append([]func(*fiber.App){pre}, mounts...)...)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func seedSeller(t *testing.T, client *ent.Client, username string) (*ent.User, *ent.Seller) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := client.User.Create().SetUsername(username).Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	s, err := client.Seller.Create().SetName(username + " shop").SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("create seller: %v", err)
	}
	return u, s
}

func seedCategory(t *testing.T, client *ent.Client, name string) *ent.Category {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cat, err := client.Category.Create().SetName(name).Save(ctx)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	return cat
}

func TestCreateProduct_EnforcesTierLimit(t *testing.T) {
	client := newTestClient(t)
	u, _ := seedSeller(t, client, "tulip")
	cat := seedCategory(t, client, "plants")
	app := newAuthedApp(u.ID, nil, func(app *fiber.App) {
		app.Post("/products", CreateProductHandler(client, nil, nil))
	})

	for i := 0; i < 3; i++ {
		res := postJSON(t, app, "/products", CreateProductRequest{
			Name:       fmt.Sprintf("pot %d", i),
			Price:      10,
			CategoryID: cat.ID,
		})
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("product %d: status=%d", i, res.StatusCode)
		}
	}
	res := postJSON(t, app, "/products", CreateProductRequest{Name: "one too many", Price: 10, CategoryID: cat.ID})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("expected tier limit, status=%d", res.StatusCode)
	}
}

func TestCreateProduct_RequiresSellerProfile(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("plainuser").Save(ctx)
	cat := seedCategory(t, client, "misc")
	app := newAuthedApp(u.ID, nil, func(app *fiber.App) {
		app.Post("/products", CreateProductHandler(client, nil, nil))
	})

	res := postJSON(t, app, "/products", CreateProductRequest{Name: "nope", Price: 1, CategoryID: cat.ID})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestListProducts_PriceFilterAndSort(t *testing.T) {
	client := newTestClient(t)
	_, s := seedSeller(t, client, "rose")
	cat := seedCategory(t, client, "flowers")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i, price := range []float64{5, 50, 500} {
		_, err := client.Product.Create().
			SetName(fmt.Sprintf("bouquet %d", i)).
			SetPrice(price).
			SetSeller(s).
			SetCategory(cat).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/products", ListProductsHandler(client))
	})

	res := get(t, app, "/products?min_price=10&sort=price:asc")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data []struct {
			Price float64 `json:"price"`
		} `json:"data"`
		Meta kit.PageMeta `json:"meta"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 {
		t.Fatalf("items=%d", len(env.Data))
	}
	if env.Data[0].Price != 50 || env.Data[1].Price != 500 {
		t.Fatalf("unexpected order: %+v", env.Data)
	}
	if env.Meta.Mode != "offset" {
		t.Fatalf("mode=%s", env.Meta.Mode)
	}
}

func TestListProducts_CursorPaging(t *testing.T) {
	client := newTestClient(t)
	_, s := seedSeller(t, client, "fern")
	cat := seedCategory(t, client, "greens")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := client.Product.Create().
			SetName(fmt.Sprintf("leaf %d", i)).
			SetPrice(float64(i)).
			SetCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			SetSeller(s).
			SetCategory(cat).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/products", ListProductsHandler(client))
	})

	seen := map[string]bool{}
	cursor := kit.EncodeCursor(uuid.NewString(), base.Add(time.Hour)) // newer than everything
	total := 0
	for i := 0; i < 4; i++ {
		res := get(t, app, "/products?limit=2&cursor="+cursor)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("page %d: status=%d", i, res.StatusCode)
		}
		var env struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
			Meta kit.PageMeta `json:"meta"`
		}
		if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, it := range env.Data {
			if seen[it.ID] {
				t.Fatalf("duplicate item %s across pages", it.ID)
			}
			seen[it.ID] = true
		}
		total += len(env.Data)
		if len(env.Data) == 0 || env.Meta.NextCursor == nil {
			break
		}
		cursor = *env.Meta.NextCursor
	}
	if total != 5 {
		t.Fatalf("paged items=%d", total)
	}
}

func TestListProducts_BareIDCursorResumes(t *testing.T) {
	client := newTestClient(t)
	_, s := seedSeller(t, client, "moss")
	cat := seedCategory(t, client, "shade")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	base := time.Now().UTC().Add(-time.Hour)
	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		p, err := client.Product.Create().
			SetName(fmt.Sprintf("stone %d", i)).
			SetPrice(float64(i)).
			SetCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			SetSeller(s).
			SetCategory(cat).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed product: %v", err)
		}
		ids = append(ids, p.ID.String())
	}
	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/products", ListProductsHandler(client))
	})

	// Anchoring on the newest row must return only the two older ones.
	res := get(t, app, "/products?limit=10&cursor="+ids[2])
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 {
		t.Fatalf("items=%d", len(env.Data))
	}
	for _, it := range env.Data {
		if it.ID == ids[2] {
			t.Fatalf("anchor row returned")
		}
	}

	res = get(t, app, "/products?cursor="+uuid.NewString())
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown anchor status=%d", res.StatusCode)
	}
}

func TestProductDoc_TimestampFormat(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	p := &ent.Product{ID: uuid.New(), Name: "clay pot", Price: 12.5, CreatedAt: created}
	doc := productDoc(p, uuid.New(), uuid.New())
	if doc.CreatedAt != "2026-03-14T09:26:53Z" {
		t.Fatalf("created_at=%q", doc.CreatedAt)
	}
	if _, err := time.Parse(time.RFC3339, doc.CreatedAt); err != nil {
		t.Fatalf("not RFC3339: %v", err)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	client := newTestClient(t)
	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/products/:id", GetProductHandler(client))
	})
	res := get(t, app, "/products/"+uuid.NewString())
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestCategoryCRUD(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	admin, _ := client.User.Create().SetUsername("root").SetType("admin").Save(ctx)
	app := newAuthedApp(admin.ID, []string{"admin"},
		func(app *fiber.App) { app.Post("/categories", CreateCategoryHandler(client)) },
		func(app *fiber.App) { app.Patch("/categories/:id", UpdateCategoryHandler(client)) },
		func(app *fiber.App) { app.Delete("/categories/:id", DeleteCategoryHandler(client)) },
		func(app *fiber.App) { app.Get("/categories", ListCategoriesHandler(client)) },
	)

	res := postJSON(t, app, "/categories", CreateCategoryRequest{Name: "tools"})
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

	// duplicate name rejected
	res = postJSON(t, app, "/categories", CreateCategoryRequest{Name: "tools"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate: status=%d", res.StatusCode)
	}

	body, _ := json.Marshal(fiber.Map{"name": "hand tools"})
	req := httptest.NewRequest(http.MethodPatch, "/categories/"+created.Data.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status=%d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodDelete, "/categories/"+created.Data.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: status=%d", resp.StatusCode)
	}

	if n, err := client.Category.Query().Count(ctx); err != nil || n != 0 {
		t.Fatalf("categories=%d err=%v", n, err)
	}
}

func TestDeleteProduct_OwnerOnly(t *testing.T) {
	client := newTestClient(t)
	_, s := seedSeller(t, client, "owner")
	cat := seedCategory(t, client, "stuff")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p, err := client.Product.Create().SetName("thing").SetPrice(1).SetSeller(s).SetCategory(cat).Save(ctx)
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	stranger, _ := client.User.Create().SetUsername("stranger").Save(ctx)

	app := newAuthedApp(stranger.ID, nil, func(app *fiber.App) {
		app.Delete("/products/:id", DeleteProductHandler(client, nil, nil))
	})
	req := httptest.NewRequest(http.MethodDelete, "/products/"+p.ID.String(), nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
