package reviews

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
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

func seedProduct(t *testing.T, client *ent.Client) (*ent.Seller, *ent.Product) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	owner, err := client.User.Create().SetUsername("shopkeeper").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	s, err := client.Seller.Create().SetName("the shop").SetUser(owner).Save(ctx)
	if err != nil {
		t.Fatalf("create seller: %v", err)
	}
	cat, err := client.Category.Create().SetName("goods").Save(ctx)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	p, err := client.Product.Create().SetName("widget").SetPrice(9.99).SetSeller(s).SetCategory(cat).Save(ctx)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return s, p
}

func reviewApp(client *ent.Client, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			if uid != uuid.Nil {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
			}
			return c.Next()
		})
		app.Get("/products/:id/reviews", ListProductReviewsHandler(client))
		app.Post("/products/:id/reviews", CreateReviewHandler(client, nil))
	})
}

func postReview(t *testing.T, app *fiber.App, pid uuid.UUID, body CreateReviewRequest) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/products/"+pid.String()+"/reviews", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestCreateReview_RecomputesSellerRating(t *testing.T) {
	client := newTestClient(t)
	s, p := seedProduct(t, client)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	alice, _ := client.User.Create().SetUsername("alice").Save(ctx)
	bob, _ := client.User.Create().SetUsername("bob").Save(ctx)

	res := postReview(t, reviewApp(client, alice.ID), p.ID, CreateReviewRequest{Rating: 5, Comment: "great"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
	res = postReview(t, reviewApp(client, bob.ID), p.ID, CreateReviewRequest{Rating: 2})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}

	got, err := client.Seller.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get seller: %v", err)
	}
	if math.Abs(got.Rating-3.5) > 1e-9 {
		t.Fatalf("rating=%v", got.Rating)
	}
}

func TestCreateReview_DuplicateRejected(t *testing.T) {
	client := newTestClient(t)
	_, p := seedProduct(t, client)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	alice, _ := client.User.Create().SetUsername("alice").Save(ctx)
	app := reviewApp(client, alice.ID)

	if res := postReview(t, app, p.ID, CreateReviewRequest{Rating: 4}); res.StatusCode != http.StatusCreated {
		t.Fatalf("first: status=%d", res.StatusCode)
	}
	if res := postReview(t, app, p.ID, CreateReviewRequest{Rating: 1}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate: status=%d", res.StatusCode)
	}
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	client := newTestClient(t)
	_, p := seedProduct(t, client)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	alice, _ := client.User.Create().SetUsername("alice").Save(ctx)
	app := reviewApp(client, alice.ID)

	for _, r := range []int{0, 6} {
		if res := postReview(t, app, p.ID, CreateReviewRequest{Rating: r}); res.StatusCode != http.StatusBadRequest {
			t.Fatalf("rating=%d: status=%d", r, res.StatusCode)
		}
	}
}

func TestListProductReviews(t *testing.T) {
	client := newTestClient(t)
	_, p := seedProduct(t, client)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	alice, _ := client.User.Create().SetUsername("alice").Save(ctx)
	_, err := client.Review.Create().SetRating(4).SetComment("ok").SetUserID(alice.ID).SetProduct(p).Save(ctx)
	if err != nil {
		t.Fatalf("seed review: %v", err)
	}

	app := reviewApp(client, uuid.Nil)
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/products/"+p.ID.String()+"/reviews", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data []struct {
			Rating int `json:"rating"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].Rating != 4 {
		t.Fatalf("unexpected reviews: %+v", env.Data)
	}
}
