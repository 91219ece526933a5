package subscriptions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fiber-ent-market-pg/ent"
	"fiber-ent-market-pg/ent/seller"
	"fiber-ent-market-pg/ent/sellersubscription"
)

// Limits a seller gets without any paid subscription.
const (
	FreeMaxProducts       = 3
	FreeMaxContactMethods = 1
	FreeMaxBanners        = 0
)

// TierLimits is the effective resource caps for a seller.
type TierLimits struct {
	MaxProducts       int
	MaxContactMethods int
	MaxBanners        int
}

// EffectiveLimits resolves the seller's active, paid, unexpired subscription
// tier; without one the free limits apply.
func EffectiveLimits(ctx context.Context, client *ent.Client, sellerID uuid.UUID) (TierLimits, error) {
	free := TierLimits{
		MaxProducts:       FreeMaxProducts,
		MaxContactMethods: FreeMaxContactMethods,
		MaxBanners:        FreeMaxBanners,
	}
	now := time.Now().UTC()
	sub, err := client.SellerSubscription.Query().
		Where(
			sellersubscription.HasSellerWith(seller.IDEQ(sellerID)),
			sellersubscription.IsActiveEQ(true),
			sellersubscription.PaymentStatusEQ(sellersubscription.PaymentStatusPaid),
			sellersubscription.EndsAtGT(now),
		).
		WithTier().
		Order(ent.Desc(sellersubscription.FieldEndsAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return free, nil
	}
	if err != nil {
		return free, err
	}
	t := sub.Edges.Tier
	if t == nil {
		return free, nil
	}
	return TierLimits{
		MaxProducts:       t.MaxProducts,
		MaxContactMethods: t.MaxContactMethods,
		MaxBanners:        t.MaxBanners,
	}, nil
}
