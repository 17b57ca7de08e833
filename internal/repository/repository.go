package repository

import (
	"context"

	"github.com/riseagainX/orm/internal/domain"
)

// PageContentRepository reads static page records.
type PageContentRepository interface {
	// GetActiveByTitle returns the active record for title, or
	// apperrors.ErrNotFound when none exists.
	GetActiveByTitle(ctx context.Context, title string) (*domain.PageContent, error)
}

// BrandOfferRepository reads brands eligible for the home page offers.
type BrandOfferRepository interface {
	// ListEligible returns every active brand that has an active category,
	// at least one sellable product and an active discount promotion,
	// with its prices and promotion links in query order.
	ListEligible(ctx context.Context) ([]domain.BrandOffer, error)
}

// PromocodeRepository reads redeemable promocodes.
type PromocodeRepository interface {
	// ListRedeemable returns the codes usable today for the given
	// promotions, in storage order. Several codes may share a promotion.
	ListRedeemable(ctx context.Context, promotionIDs []int64) ([]domain.Promocode, error)
}
