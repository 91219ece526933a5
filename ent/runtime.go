// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fiber-ent-market-pg/ent/analyticsevent"
	"fiber-ent-market-pg/ent/authattempt"
	"fiber-ent-market-pg/ent/banner"
	"fiber-ent-market-pg/ent/category"
	"fiber-ent-market-pg/ent/favorite"
	"fiber-ent-market-pg/ent/identity"
	"fiber-ent-market-pg/ent/notification"
	"fiber-ent-market-pg/ent/product"
	"fiber-ent-market-pg/ent/review"
	"fiber-ent-market-pg/ent/schema"
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/sellersubscription"
	"fiber-ent-market-pg/ent/subscriptiontier"
	"fiber-ent-market-pg/ent/telegramaccount"
	"fiber-ent-market-pg/ent/user"
	"fiber-ent-market-pg/ent/useraddress"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analyticseventFields := schema.AnalyticsEvent{}.Fields()
	_ = analyticseventFields
	// analyticseventDescEventType is the schema descriptor for event_type field.
	analyticseventDescEventType := analyticseventFields[1].Descriptor()
	// analyticsevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	analyticsevent.EventTypeValidator = analyticseventDescEventType.Validators[0].(func(string) error)
	// analyticseventDescCreatedAt is the schema descriptor for created_at field.
	analyticseventDescCreatedAt := analyticseventFields[6].Descriptor()
	// analyticsevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	analyticsevent.DefaultCreatedAt = analyticseventDescCreatedAt.Default.(func() time.Time)
	// analyticseventDescID is the schema descriptor for id field.
	analyticseventDescID := analyticseventFields[0].Descriptor()
	// analyticsevent.DefaultID holds the default value on creation for the id field.
	analyticsevent.DefaultID = analyticseventDescID.Default.(func() uuid.UUID)
	authattemptFields := schema.AuthAttempt{}.Fields()
	_ = authattemptFields
	// authattemptDescIPAddress is the schema descriptor for ip_address field.
	authattemptDescIPAddress := authattemptFields[1].Descriptor()
	// authattempt.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	authattempt.IPAddressValidator = authattemptDescIPAddress.Validators[0].(func(string) error)
	// authattemptDescCreatedAt is the schema descriptor for created_at field.
	authattemptDescCreatedAt := authattemptFields[4].Descriptor()
	// authattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	authattempt.DefaultCreatedAt = authattemptDescCreatedAt.Default.(func() time.Time)
	// authattemptDescID is the schema descriptor for id field.
	authattemptDescID := authattemptFields[0].Descriptor()
	// authattempt.DefaultID holds the default value on creation for the id field.
	authattempt.DefaultID = authattemptDescID.Default.(func() uuid.UUID)
	bannerFields := schema.Banner{}.Fields()
	_ = bannerFields
	// bannerDescImageURL is the schema descriptor for image_url field.
	bannerDescImageURL := bannerFields[1].Descriptor()
	// banner.ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	banner.ImageURLValidator = bannerDescImageURL.Validators[0].(func(string) error)
	// bannerDescPlacement is the schema descriptor for placement field.
	bannerDescPlacement := bannerFields[3].Descriptor()
	// banner.DefaultPlacement holds the default value on creation for the placement field.
	banner.DefaultPlacement = bannerDescPlacement.Default.(string)
	// bannerDescIsActive is the schema descriptor for is_active field.
	bannerDescIsActive := bannerFields[6].Descriptor()
	// banner.DefaultIsActive holds the default value on creation for the is_active field.
	banner.DefaultIsActive = bannerDescIsActive.Default.(bool)
	// bannerDescCreatedAt is the schema descriptor for created_at field.
	bannerDescCreatedAt := bannerFields[7].Descriptor()
	// banner.DefaultCreatedAt holds the default value on creation for the created_at field.
	banner.DefaultCreatedAt = bannerDescCreatedAt.Default.(func() time.Time)
	// bannerDescID is the schema descriptor for id field.
	bannerDescID := bannerFields[0].Descriptor()
	// banner.DefaultID holds the default value on creation for the id field.
	banner.DefaultID = bannerDescID.Default.(func() uuid.UUID)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryFields[3].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	// categoryDescUpdatedAt is the schema descriptor for updated_at field.
	categoryDescUpdatedAt := categoryFields[4].Descriptor()
	// category.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	category.DefaultUpdatedAt = categoryDescUpdatedAt.Default.(func() time.Time)
	// category.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	category.UpdateDefaultUpdatedAt = categoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	favoriteFields := schema.Favorite{}.Fields()
	_ = favoriteFields
	// favoriteDescCreatedAt is the schema descriptor for created_at field.
	favoriteDescCreatedAt := favoriteFields[1].Descriptor()
	// favorite.DefaultCreatedAt holds the default value on creation for the created_at field.
	favorite.DefaultCreatedAt = favoriteDescCreatedAt.Default.(func() time.Time)
	// favoriteDescID is the schema descriptor for id field.
	favoriteDescID := favoriteFields[0].Descriptor()
	// favorite.DefaultID holds the default value on creation for the id field.
	favorite.DefaultID = favoriteDescID.Default.(func() uuid.UUID)
	identityFields := schema.Identity{}.Fields()
	_ = identityFields
	// identityDescIdentifier is the schema descriptor for identifier field.
	identityDescIdentifier := identityFields[2].Descriptor()
	// identity.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	identity.IdentifierValidator = func() func(string) error {
		validators := identityDescIdentifier.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(identifier string) error {
			for _, fn := range fns {
				if err := fn(identifier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// identityDescSecretHash is the schema descriptor for secret_hash field.
	identityDescSecretHash := identityFields[3].Descriptor()
	// identity.SecretHashValidator is a validator for the "secret_hash" field. It is called by the builders before save.
	identity.SecretHashValidator = identityDescSecretHash.Validators[0].(func(string) error)
	// identityDescCreatedAt is the schema descriptor for created_at field.
	identityDescCreatedAt := identityFields[4].Descriptor()
	// identity.DefaultCreatedAt holds the default value on creation for the created_at field.
	identity.DefaultCreatedAt = identityDescCreatedAt.Default.(func() time.Time)
	// identityDescID is the schema descriptor for id field.
	identityDescID := identityFields[0].Descriptor()
	// identity.DefaultID holds the default value on creation for the id field.
	identity.DefaultID = identityDescID.Default.(func() uuid.UUID)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[1].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[3].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[4].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationFields[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[1].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = productDescName.Validators[0].(func(string) error)
	// productDescPrice is the schema descriptor for price field.
	productDescPrice := productFields[3].Descriptor()
	// product.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	product.PriceValidator = productDescPrice.Validators[0].(func(float64) error)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[5].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[6].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescRating is the schema descriptor for rating field.
	reviewDescRating := reviewFields[1].Descriptor()
	// review.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	review.RatingValidator = func() func(int) error {
		validators := reviewDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[3].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	// reviewDescID is the schema descriptor for id field.
	reviewDescID := reviewFields[0].Descriptor()
	// review.DefaultID holds the default value on creation for the id field.
	review.DefaultID = reviewDescID.Default.(func() uuid.UUID)
	sellerFields := schema.Seller{}.Fields()
	_ = sellerFields
	// sellerDescName is the schema descriptor for name field.
	sellerDescName := sellerFields[1].Descriptor()
	// seller.NameValidator is a validator for the "name" field. It is called by the builders before save.
	seller.NameValidator = sellerDescName.Validators[0].(func(string) error)
	// sellerDescRating is the schema descriptor for rating field.
	sellerDescRating := sellerFields[3].Descriptor()
	// seller.DefaultRating holds the default value on creation for the rating field.
	seller.DefaultRating = sellerDescRating.Default.(float64)
	// sellerDescCreatedAt is the schema descriptor for created_at field.
	sellerDescCreatedAt := sellerFields[8].Descriptor()
	// seller.DefaultCreatedAt holds the default value on creation for the created_at field.
	seller.DefaultCreatedAt = sellerDescCreatedAt.Default.(func() time.Time)
	// sellerDescUpdatedAt is the schema descriptor for updated_at field.
	sellerDescUpdatedAt := sellerFields[9].Descriptor()
	// seller.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	seller.DefaultUpdatedAt = sellerDescUpdatedAt.Default.(func() time.Time)
	// seller.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	seller.UpdateDefaultUpdatedAt = sellerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sellerDescID is the schema descriptor for id field.
	sellerDescID := sellerFields[0].Descriptor()
	// seller.DefaultID holds the default value on creation for the id field.
	seller.DefaultID = sellerDescID.Default.(func() uuid.UUID)
	sellersubscriptionFields := schema.SellerSubscription{}.Fields()
	_ = sellersubscriptionFields
	// sellersubscriptionDescIsActive is the schema descriptor for is_active field.
	sellersubscriptionDescIsActive := sellersubscriptionFields[3].Descriptor()
	// sellersubscription.DefaultIsActive holds the default value on creation for the is_active field.
	sellersubscription.DefaultIsActive = sellersubscriptionDescIsActive.Default.(bool)
	// sellersubscriptionDescCreatedAt is the schema descriptor for created_at field.
	sellersubscriptionDescCreatedAt := sellersubscriptionFields[5].Descriptor()
	// sellersubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	sellersubscription.DefaultCreatedAt = sellersubscriptionDescCreatedAt.Default.(func() time.Time)
	// sellersubscriptionDescID is the schema descriptor for id field.
	sellersubscriptionDescID := sellersubscriptionFields[0].Descriptor()
	// sellersubscription.DefaultID holds the default value on creation for the id field.
	sellersubscription.DefaultID = sellersubscriptionDescID.Default.(func() uuid.UUID)
	subscriptiontierFields := schema.SubscriptionTier{}.Fields()
	_ = subscriptiontierFields
	// subscriptiontierDescName is the schema descriptor for name field.
	subscriptiontierDescName := subscriptiontierFields[1].Descriptor()
	// subscriptiontier.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subscriptiontier.NameValidator = subscriptiontierDescName.Validators[0].(func(string) error)
	// subscriptiontierDescPrice is the schema descriptor for price field.
	subscriptiontierDescPrice := subscriptiontierFields[2].Descriptor()
	// subscriptiontier.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	subscriptiontier.PriceValidator = subscriptiontierDescPrice.Validators[0].(func(float64) error)
	// subscriptiontierDescMaxProducts is the schema descriptor for max_products field.
	subscriptiontierDescMaxProducts := subscriptiontierFields[3].Descriptor()
	// subscriptiontier.MaxProductsValidator is a validator for the "max_products" field. It is called by the builders before save.
	subscriptiontier.MaxProductsValidator = subscriptiontierDescMaxProducts.Validators[0].(func(int) error)
	// subscriptiontierDescMaxContactMethods is the schema descriptor for max_contact_methods field.
	subscriptiontierDescMaxContactMethods := subscriptiontierFields[4].Descriptor()
	// subscriptiontier.MaxContactMethodsValidator is a validator for the "max_contact_methods" field. It is called by the builders before save.
	subscriptiontier.MaxContactMethodsValidator = subscriptiontierDescMaxContactMethods.Validators[0].(func(int) error)
	// subscriptiontierDescMaxBanners is the schema descriptor for max_banners field.
	subscriptiontierDescMaxBanners := subscriptiontierFields[5].Descriptor()
	// subscriptiontier.MaxBannersValidator is a validator for the "max_banners" field. It is called by the builders before save.
	subscriptiontier.MaxBannersValidator = subscriptiontierDescMaxBanners.Validators[0].(func(int) error)
	// subscriptiontierDescCreatedAt is the schema descriptor for created_at field.
	subscriptiontierDescCreatedAt := subscriptiontierFields[7].Descriptor()
	// subscriptiontier.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscriptiontier.DefaultCreatedAt = subscriptiontierDescCreatedAt.Default.(func() time.Time)
	// subscriptiontierDescID is the schema descriptor for id field.
	subscriptiontierDescID := subscriptiontierFields[0].Descriptor()
	// subscriptiontier.DefaultID holds the default value on creation for the id field.
	subscriptiontier.DefaultID = subscriptiontierDescID.Default.(func() uuid.UUID)
	telegramaccountFields := schema.TelegramAccount{}.Fields()
	_ = telegramaccountFields
	// telegramaccountDescFirstName is the schema descriptor for first_name field.
	telegramaccountDescFirstName := telegramaccountFields[3].Descriptor()
	// telegramaccount.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	telegramaccount.FirstNameValidator = telegramaccountDescFirstName.Validators[0].(func(string) error)
	// telegramaccountDescCreatedAt is the schema descriptor for created_at field.
	telegramaccountDescCreatedAt := telegramaccountFields[8].Descriptor()
	// telegramaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	telegramaccount.DefaultCreatedAt = telegramaccountDescCreatedAt.Default.(func() time.Time)
	// telegramaccountDescID is the schema descriptor for id field.
	telegramaccountDescID := telegramaccountFields[0].Descriptor()
	// telegramaccount.DefaultID holds the default value on creation for the id field.
	telegramaccount.DefaultID = telegramaccountDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[7].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[9].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[10].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	useraddressFields := schema.UserAddress{}.Fields()
	_ = useraddressFields
	// useraddressDescLabel is the schema descriptor for label field.
	useraddressDescLabel := useraddressFields[1].Descriptor()
	// useraddress.DefaultLabel holds the default value on creation for the label field.
	useraddress.DefaultLabel = useraddressDescLabel.Default.(string)
	// useraddressDescCity is the schema descriptor for city field.
	useraddressDescCity := useraddressFields[2].Descriptor()
	// useraddress.CityValidator is a validator for the "city" field. It is called by the builders before save.
	useraddress.CityValidator = useraddressDescCity.Validators[0].(func(string) error)
	// useraddressDescStreet is the schema descriptor for street field.
	useraddressDescStreet := useraddressFields[3].Descriptor()
	// useraddress.StreetValidator is a validator for the "street" field. It is called by the builders before save.
	useraddress.StreetValidator = useraddressDescStreet.Validators[0].(func(string) error)
	// useraddressDescIsDefault is the schema descriptor for is_default field.
	useraddressDescIsDefault := useraddressFields[7].Descriptor()
	// useraddress.DefaultIsDefault holds the default value on creation for the is_default field.
	useraddress.DefaultIsDefault = useraddressDescIsDefault.Default.(bool)
	// useraddressDescCreatedAt is the schema descriptor for created_at field.
	useraddressDescCreatedAt := useraddressFields[8].Descriptor()
	// useraddress.DefaultCreatedAt holds the default value on creation for the created_at field.
	useraddress.DefaultCreatedAt = useraddressDescCreatedAt.Default.(func() time.Time)
	// useraddressDescUpdatedAt is the schema descriptor for updated_at field.
	useraddressDescUpdatedAt := useraddressFields[9].Descriptor()
	// useraddress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	useraddress.DefaultUpdatedAt = useraddressDescUpdatedAt.Default.(func() time.Time)
	// useraddress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	useraddress.UpdateDefaultUpdatedAt = useraddressDescUpdatedAt.UpdateDefault.(func() time.Time)
	// useraddressDescID is the schema descriptor for id field.
	useraddressDescID := useraddressFields[0].Descriptor()
	// useraddress.DefaultID holds the default value on creation for the id field.
	useraddress.DefaultID = useraddressDescID.Default.(func() uuid.UUID)
}
