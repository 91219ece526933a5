package users

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
	"fiber-ent-market-pg/ent/useraddress"
	entuser "fiber-ent-market-pg/ent/user"
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

func userApp(client *ent.Client, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
			return c.Next()
		})
		app.Get("/users/me", GetMeHandler(client))
		app.Patch("/users/me", UpdateMeHandler(client))
		app.Get("/users/me/addresses", ListAddressesHandler(client))
		app.Post("/users/me/addresses", CreateAddressHandler(client))
		app.Patch("/users/me/addresses/:id", UpdateAddressHandler(client))
		app.Delete("/users/me/addresses/:id", DeleteAddressHandler(client))
		app.Get("/users/me/notifications", ListNotificationsHandler(client))
		app.Post("/users/me/notifications/:id/read", MarkNotificationReadHandler(client))
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

func TestUpdateMe(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("dmitry").Save(ctx)
	app := userApp(client, u.ID)

	res := doJSON(t, app, http.MethodPatch, "/users/me", UpdateProfileRequest{
		DisplayName: lo.ToPtr("Dmitry"),
		Bio:         lo.ToPtr("plants and pots"),
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	got, err := client.User.Query().Where(entuser.IDEQ(u.ID)).Only(ctx)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.DisplayName != "Dmitry" || got.Bio != "plants and pots" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestCreateAddress_DefaultFlagExclusive(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("mover").Save(ctx)
	app := userApp(client, u.ID)

	res := doJSON(t, app, http.MethodPost, "/users/me/addresses", AddressRequest{
		City: "Moscow", Street: "Arbat", IsDefault: true,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("first: status=%d", res.StatusCode)
	}
	res = doJSON(t, app, http.MethodPost, "/users/me/addresses", AddressRequest{
		City: "Kazan", Street: "Bauman", IsDefault: true,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("second: status=%d", res.StatusCode)
	}

	defaults, err := client.UserAddress.Query().Where(useraddress.IsDefaultEQ(true)).All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(defaults) != 1 || defaults[0].City != "Kazan" {
		t.Fatalf("unexpected defaults: %+v", defaults)
	}
}

func TestCreateAddress_CityRequired(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("vague").Save(ctx)
	app := userApp(client, u.ID)

	res := doJSON(t, app, http.MethodPost, "/users/me/addresses", AddressRequest{Street: "Nowhere"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestDeleteAddress_ScopedToOwner(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	owner, _ := client.User.Create().SetUsername("homeowner").Save(ctx)
	other, _ := client.User.Create().SetUsername("intruder").Save(ctx)
	addr, err := client.UserAddress.Create().SetCity("Sochi").SetStreet("Beach").SetUserID(owner.ID).Save(ctx)
	if err != nil {
		t.Fatalf("seed address: %v", err)
	}

	// someone else's address looks like 404
	app := userApp(client, other.ID)
	res, err := app.Test(httptest.NewRequest(http.MethodDelete, "/users/me/addresses/"+addr.ID.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign delete: status=%d", res.StatusCode)
	}

	app = userApp(client, owner.ID)
	res, err = app.Test(httptest.NewRequest(http.MethodDelete, "/users/me/addresses/"+addr.ID.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("owner delete: status=%d", res.StatusCode)
	}
}

func TestNotifications_UnreadFilterAndMarkRead(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("reader").Save(ctx)
	n1, err := client.Notification.Create().SetTitle("order shipped").SetUserID(u.ID).Save(ctx)
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	_, err = client.Notification.Create().SetTitle("welcome").SetIsRead(true).SetUserID(u.ID).Save(ctx)
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	app := userApp(client, u.ID)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/me/notifications?unread=true", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var env struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].Title != "order shipped" {
		t.Fatalf("unexpected notifications: %+v", env.Data)
	}

	res, err = app.Test(httptest.NewRequest(http.MethodPost, "/users/me/notifications/"+n1.ID.String()+"/read", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("mark read: status=%d", res.StatusCode)
	}
	got, err := client.Notification.Get(ctx, n1.ID)
	if err != nil || !got.IsRead {
		t.Fatalf("is_read=%v err=%v", got.IsRead, err)
	}
}

func TestGetMe_IncludesSellerEdge(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, _ := client.User.Create().SetUsername("edgy").Save(ctx)
	_, err := client.Seller.Create().SetName("edgy shop").SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("seed seller: %v", err)
	}
	app := userApp(client, u.ID)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/me", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Username string `json:"username"`
			Edges    struct {
				Seller *struct {
					Name string `json:"name"`
				} `json:"seller"`
			} `json:"edges"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Username != "edgy" || env.Data.Edges.Seller == nil || env.Data.Edges.Seller.Name != "edgy shop" {
		t.Fatalf("unexpected body: %+v", env.Data)
	}
}
