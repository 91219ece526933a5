// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalyticsEvent is the predicate function for analyticsevent builders.
type AnalyticsEvent func(*sql.Selector)

// AuthAttempt is the predicate function for authattempt builders.
type AuthAttempt func(*sql.Selector)

// Banner is the predicate function for banner builders.
type Banner func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Favorite is the predicate function for favorite builders.
type Favorite func(*sql.Selector)

// Identity is the predicate function for identity builders.
type Identity func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// Seller is the predicate function for seller builders.
type Seller func(*sql.Selector)

// SellerSubscription is the predicate function for sellersubscription builders.
type SellerSubscription func(*sql.Selector)

// SubscriptionTier is the predicate function for subscriptiontier builders.
type SubscriptionTier func(*sql.Selector)

// TelegramAccount is the predicate function for telegramaccount builders.
type TelegramAccount func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserAddress is the predicate function for useraddress builders.
type UserAddress func(*sql.Selector)
