// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalyticsEventsColumns holds the columns for the "analytics_events" table.
	AnalyticsEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "event_type", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "seller_id", Type: field.TypeUUID, Nullable: true},
		{Name: "product_id", Type: field.TypeUUID, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnalyticsEventsTable holds the schema information for the "analytics_events" table.
	AnalyticsEventsTable = &schema.Table{
		Name:       "analytics_events",
		Columns:    AnalyticsEventsColumns,
		PrimaryKey: []*schema.Column{AnalyticsEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analyticsevent_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[1], AnalyticsEventsColumns[6]},
			},
			{
				Name:    "analyticsevent_seller_id",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[3]},
			},
		},
	}
	// AuthAttemptsColumns holds the columns for the "auth_attempts" table.
	AuthAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "ip_address", Type: field.TypeString},
		{Name: "identifier", Type: field.TypeString, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuthAttemptsTable holds the schema information for the "auth_attempts" table.
	AuthAttemptsTable = &schema.Table{
		Name:       "auth_attempts",
		Columns:    AuthAttemptsColumns,
		PrimaryKey: []*schema.Column{AuthAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "authattempt_ip_address_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuthAttemptsColumns[1], AuthAttemptsColumns[4]},
			},
		},
	}
	// BannersColumns holds the columns for the "banners" table.
	BannersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "image_url", Type: field.TypeString},
		{Name: "link_url", Type: field.TypeString, Nullable: true},
		{Name: "placement", Type: field.TypeString, Default: "home"},
		{Name: "starts_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "ends_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "seller_banners", Type: field.TypeUUID},
	}
	// BannersTable holds the schema information for the "banners" table.
	BannersTable = &schema.Table{
		Name:       "banners",
		Columns:    BannersColumns,
		PrimaryKey: []*schema.Column{BannersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "banners_sellers_banners",
				Columns:    []*schema.Column{BannersColumns[8]},
				RefColumns: []*schema.Column{SellersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "banner_placement_is_active",
				Unique:  false,
				Columns: []*schema.Column{BannersColumns[3], BannersColumns[6]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "image", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// FavoritesColumns holds the columns for the "favorites" table.
	FavoritesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "product_favorites", Type: field.TypeUUID, Nullable: true},
		{Name: "seller_favorites", Type: field.TypeUUID, Nullable: true},
		{Name: "user_favorites", Type: field.TypeUUID},
	}
	// FavoritesTable holds the schema information for the "favorites" table.
	FavoritesTable = &schema.Table{
		Name:       "favorites",
		Columns:    FavoritesColumns,
		PrimaryKey: []*schema.Column{FavoritesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "favorites_products_favorites",
				Columns:    []*schema.Column{FavoritesColumns[2]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "favorites_sellers_favorites",
				Columns:    []*schema.Column{FavoritesColumns[3]},
				RefColumns: []*schema.Column{SellersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "favorites_users_favorites",
				Columns:    []*schema.Column{FavoritesColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "favorite_user_favorites_product_favorites",
				Unique:  true,
				Columns: []*schema.Column{FavoritesColumns[4], FavoritesColumns[2]},
			},
			{
				Name:    "favorite_user_favorites_seller_favorites",
				Unique:  true,
				Columns: []*schema.Column{FavoritesColumns[4], FavoritesColumns[3]},
			},
		},
	}
	// IdentitiesColumns holds the columns for the "identities" table.
	IdentitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"password", "telegram"}, Default: "password"},
		{Name: "identifier", Type: field.TypeString, Size: 320},
		{Name: "secret_hash", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_identities", Type: field.TypeUUID},
	}
	// IdentitiesTable holds the schema information for the "identities" table.
	IdentitiesTable = &schema.Table{
		Name:       "identities",
		Columns:    IdentitiesColumns,
		PrimaryKey: []*schema.Column{IdentitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "identities_users_identities",
				Columns:    []*schema.Column{IdentitiesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "identity_provider_identifier",
				Unique:  true,
				Columns: []*schema.Column{IdentitiesColumns[1], IdentitiesColumns[2]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_notifications", Type: field.TypeUUID},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "images", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_products", Type: field.TypeUUID},
		{Name: "seller_products", Type: field.TypeUUID},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_categories_products",
				Columns:    []*schema.Column{ProductsColumns[7]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "products_sellers_products",
				Columns:    []*schema.Column{ProductsColumns[8]},
				RefColumns: []*schema.Column{SellersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "product_reviews", Type: field.TypeUUID},
		{Name: "user_reviews", Type: field.TypeUUID},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_products_reviews",
				Columns:    []*schema.Column{ReviewsColumns[4]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "reviews_users_reviews",
				Columns:    []*schema.Column{ReviewsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_user_reviews_product_reviews",
				Unique:  true,
				Columns: []*schema.Column{ReviewsColumns[5], ReviewsColumns[4]},
			},
		},
	}
	// SellersColumns holds the columns for the "sellers" table.
	SellersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "image", Type: field.TypeString, Nullable: true},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "telegram_username", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_seller", Type: field.TypeUUID, Unique: true},
	}
	// SellersTable holds the schema information for the "sellers" table.
	SellersTable = &schema.Table{
		Name:       "sellers",
		Columns:    SellersColumns,
		PrimaryKey: []*schema.Column{SellersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sellers_users_seller",
				Columns:    []*schema.Column{SellersColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SellerSubscriptionsColumns holds the columns for the "seller_subscriptions" table.
	SellerSubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "starts_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "ends_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "payment_status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "seller_subscriptions", Type: field.TypeUUID},
		{Name: "subscription_tier_subscriptions", Type: field.TypeUUID},
	}
	// SellerSubscriptionsTable holds the schema information for the "seller_subscriptions" table.
	SellerSubscriptionsTable = &schema.Table{
		Name:       "seller_subscriptions",
		Columns:    SellerSubscriptionsColumns,
		PrimaryKey: []*schema.Column{SellerSubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "seller_subscriptions_sellers_subscriptions",
				Columns:    []*schema.Column{SellerSubscriptionsColumns[6]},
				RefColumns: []*schema.Column{SellersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "seller_subscriptions_subscription_tiers_subscriptions",
				Columns:    []*schema.Column{SellerSubscriptionsColumns[7]},
				RefColumns: []*schema.Column{SubscriptionTiersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sellersubscription_is_active",
				Unique:  false,
				Columns: []*schema.Column{SellerSubscriptionsColumns[3]},
			},
		},
	}
	// SubscriptionTiersColumns holds the columns for the "subscription_tiers" table.
	SubscriptionTiersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "max_products", Type: field.TypeInt},
		{Name: "max_contact_methods", Type: field.TypeInt},
		{Name: "max_banners", Type: field.TypeInt},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubscriptionTiersTable holds the schema information for the "subscription_tiers" table.
	SubscriptionTiersTable = &schema.Table{
		Name:       "subscription_tiers",
		Columns:    SubscriptionTiersColumns,
		PrimaryKey: []*schema.Column{SubscriptionTiersColumns[0]},
	}
	// TelegramAccountsColumns holds the columns for the "telegram_accounts" table.
	TelegramAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "telegram_id", Type: field.TypeInt64, Unique: true},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "photo_url", Type: field.TypeString, Nullable: true},
		{Name: "language_code", Type: field.TypeString, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_telegram_account", Type: field.TypeUUID, Unique: true},
	}
	// TelegramAccountsTable holds the schema information for the "telegram_accounts" table.
	TelegramAccountsTable = &schema.Table{
		Name:       "telegram_accounts",
		Columns:    TelegramAccountsColumns,
		PrimaryKey: []*schema.Column{TelegramAccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "telegram_accounts_users_telegram_account",
				Columns:    []*schema.Column{TelegramAccountsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "bio", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"user", "admin"}, Default: "user"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserAddressesColumns holds the columns for the "user_addresses" table.
	UserAddressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "label", Type: field.TypeString, Default: "home"},
		{Name: "city", Type: field.TypeString},
		{Name: "street", Type: field.TypeString},
		{Name: "building", Type: field.TypeString, Nullable: true},
		{Name: "apartment", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_addresses", Type: field.TypeUUID},
	}
	// UserAddressesTable holds the schema information for the "user_addresses" table.
	UserAddressesTable = &schema.Table{
		Name:       "user_addresses",
		Columns:    UserAddressesColumns,
		PrimaryKey: []*schema.Column{UserAddressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_addresses_users_addresses",
				Columns:    []*schema.Column{UserAddressesColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalyticsEventsTable,
		AuthAttemptsTable,
		BannersTable,
		CategoriesTable,
		FavoritesTable,
		IdentitiesTable,
		NotificationsTable,
		ProductsTable,
		ReviewsTable,
		SellersTable,
		SellerSubscriptionsTable,
		SubscriptionTiersTable,
		TelegramAccountsTable,
		UsersTable,
		UserAddressesTable,
	}
)

func init() {
	BannersTable.ForeignKeys[0].RefTable = SellersTable
	FavoritesTable.ForeignKeys[0].RefTable = ProductsTable
	FavoritesTable.ForeignKeys[1].RefTable = SellersTable
	FavoritesTable.ForeignKeys[2].RefTable = UsersTable
	IdentitiesTable.ForeignKeys[0].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	ProductsTable.ForeignKeys[0].RefTable = CategoriesTable
	ProductsTable.ForeignKeys[1].RefTable = SellersTable
	ReviewsTable.ForeignKeys[0].RefTable = ProductsTable
	ReviewsTable.ForeignKeys[1].RefTable = UsersTable
	SellersTable.ForeignKeys[0].RefTable = UsersTable
	SellerSubscriptionsTable.ForeignKeys[0].RefTable = SellersTable
	SellerSubscriptionsTable.ForeignKeys[1].RefTable = SubscriptionTiersTable
	TelegramAccountsTable.ForeignKeys[0].RefTable = UsersTable
	UserAddressesTable.ForeignKeys[0].RefTable = UsersTable
}
