// Package httpx wires all feature packages into the fiber app.
package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/internal/blob"
	"fiber-ent-market-pg/internal/config"
	"fiber-ent-market-pg/internal/esx"
	"fiber-ent-market-pg/internal/httpx/admin"
	"fiber-ent-market-pg/internal/httpx/analytics"
	"fiber-ent-market-pg/internal/httpx/auth"
	"fiber-ent-market-pg/internal/httpx/banners"
	"fiber-ent-market-pg/internal/httpx/catalog"
	"fiber-ent-market-pg/internal/httpx/favorites"
	"fiber-ent-market-pg/internal/httpx/kit"
	"fiber-ent-market-pg/internal/httpx/media"
	"fiber-ent-market-pg/internal/httpx/mw"
	"fiber-ent-market-pg/internal/httpx/reviews"
	"fiber-ent-market-pg/internal/httpx/sellers"
	"fiber-ent-market-pg/internal/httpx/subscriptions"
	"fiber-ent-market-pg/internal/httpx/users"
	"fiber-ent-market-pg/internal/mqx"
	"fiber-ent-market-pg/internal/redisx"
)

// Providers bundles the optional infrastructure dependencies. Any of them can
// be nil; handlers degrade gracefully.
type Providers struct {
	MQ   mqx.Publisher
	ES   *esx.Client
	RDB  *redisx.Client
	Blob blob.Store
}

// ErrorHandler is the app-wide fiber error handler.
func ErrorHandler() fiber.ErrorHandler { return kit.ErrorHandler() }

// Register mounts every route group onto the app.
func Register(app *fiber.App, cfg *config.Config, client *ent.Client, providers ...*Providers) {
	p := &Providers{}
	if len(providers) > 0 && providers[0] != nil {
		p = providers[0]
	}

	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := app.Group("/api/v1")
	api.Use(mw.JWTMiddlewareDynamic(func(token string) (string, string, []string, error) {
		claims, err := auth.ParseAndValidate(cfg, token)
		if err != nil {
			return "", "", nil, err
		}
		return claims.Subject, claims.Kind, claims.Roles, nil
	}))
	api.Use(mw.RateLimitDefault(p.RDB, cfg.RateLimit.WindowSec, cfg.RateLimit.Max))

	// Auth: credential endpoints sit behind the per-IP throttle.
	authGrp := api.Group("/auth", mw.LoginThrottle(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst))
	authGrp.Post("/register", auth.RegisterHandler(cfg, client))
	authGrp.Post("/login", auth.LoginHandler(cfg, client))
	authGrp.Post("/telegram", auth.TelegramLoginHandler(cfg, client))
	api.Post("/auth/refresh", auth.RefreshHandler(cfg))
	api.Post("/auth/logout", auth.LogoutHandler())
	api.Get("/auth/me", auth.MeHandler())

	// Catalog
	api.Get("/categories", catalog.ListCategoriesHandler(client))
	api.Get("/products", catalog.ListProductsHandler(client))
	api.Get("/products/:id", catalog.GetProductHandler(client))
	api.Post("/products", mw.RequireUser(), catalog.CreateProductHandler(client, p.MQ, p.ES))
	api.Patch("/products/:id", mw.RequireUser(), catalog.UpdateProductHandler(client, p.ES))
	api.Delete("/products/:id", mw.RequireUser(), catalog.DeleteProductHandler(client, p.MQ, p.ES))
	api.Get("/search/products", catalog.SearchProductsHandler(p.ES))

	// Reviews
	api.Get("/products/:id/reviews", reviews.ListProductReviewsHandler(client))
	api.Post("/products/:id/reviews", mw.RequireUser(), reviews.CreateReviewHandler(client, p.MQ))

	// Favorites
	api.Get("/favorites", mw.RequireUser(), favorites.ListFavoritesHandler(client))
	api.Post("/favorites/toggle", mw.RequireUser(), favorites.ToggleFavoriteHandler(client))

	// Sellers
	api.Get("/sellers", sellers.ListSellersHandler(client))
	api.Post("/sellers", mw.RequireUser(), sellers.BecomeSellerHandler(client))
	api.Patch("/sellers/me", mw.RequireUser(), sellers.UpdateSellerHandler(client))
	api.Get("/sellers/:id", sellers.GetSellerHandler(client))

	// Subscriptions
	api.Get("/subscriptions/tiers", subscriptions.ListTiersHandler(client))
	api.Post("/subscriptions", mw.RequireUser(), subscriptions.SubscribeHandler(client, p.MQ))
	api.Get("/subscriptions/current", mw.RequireUser(), subscriptions.CurrentSubscriptionHandler(client))
	api.Delete("/subscriptions/current", mw.RequireUser(), subscriptions.CancelSubscriptionHandler(client, p.MQ))

	// Banners
	api.Get("/banners", banners.ListActiveBannersHandler(client))
	api.Post("/banners", mw.RequireUser(), banners.CreateBannerHandler(client))
	api.Patch("/banners/:id", mw.RequireUser(), banners.UpdateBannerHandler(client))
	api.Delete("/banners/:id", mw.RequireUser(), banners.DeleteBannerHandler(client))

	// Media
	api.Post("/media/upload", mw.RequireUser(), media.UploadHandler(p.Blob))

	// Profile, addresses, notifications
	api.Get("/users/me", mw.RequireUser(), users.GetMeHandler(client))
	api.Patch("/users/me", mw.RequireUser(), users.UpdateMeHandler(client))
	api.Get("/users/me/addresses", mw.RequireUser(), users.ListAddressesHandler(client))
	api.Post("/users/me/addresses", mw.RequireUser(), users.CreateAddressHandler(client))
	api.Patch("/users/me/addresses/:id", mw.RequireUser(), users.UpdateAddressHandler(client))
	api.Delete("/users/me/addresses/:id", mw.RequireUser(), users.DeleteAddressHandler(client))
	api.Get("/users/me/notifications", mw.RequireUser(), users.ListNotificationsHandler(client))
	api.Post("/users/me/notifications/:id/read", mw.RequireUser(), users.MarkNotificationReadHandler(client))

	// Analytics tracking is open; aggregates are admin-only below.
	api.Post("/events", analytics.TrackEventHandler(client))

	// Admin
	adm := api.Group("/admin", mw.RequireUser(), mw.RequireRoles("admin"))
	adm.Post("/users/:id/promote", admin.PromoteUserHandler(client))
	adm.Get("/stats", admin.StatsHandler(client))
	adm.Get("/analytics", analytics.AnalyticsHandler(client))
	adm.Post("/categories", catalog.CreateCategoryHandler(client))
	adm.Patch("/categories/:id", catalog.UpdateCategoryHandler(client))
	adm.Delete("/categories/:id", catalog.DeleteCategoryHandler(client))
	adm.Post("/tiers", admin.CreateTierHandler(client))
	adm.Patch("/tiers/:id", admin.UpdateTierHandler(client))
	adm.Delete("/tiers/:id", admin.DeleteTierHandler(client))
}
