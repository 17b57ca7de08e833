package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Brand holds the brand columns projected onto an offer card.
type Brand struct {
	ID             int64
	Name           string
	Description    *string
	Slug           *string
	NewArrival     *string
	Updated        *string
	SEOTitle       *string
	SEOKeyword     *string
	SEODescription *string
}

// Promotion is an active discount promotion.
type Promotion struct {
	ID        int64
	Value     decimal.Decimal
	OfferType string
}

// PromotionLink ties a brand to a promotion and carries its display text.
type PromotionLink struct {
	ID        int64
	ShortDesc *string
	Promotion Promotion
}

// BrandOffer is one eligible brand with its eligible product prices and
// promotion links, both in query order.
type BrandOffer struct {
	Brand          Brand
	Prices         []decimal.Decimal
	PromotionLinks []PromotionLink
}

// WinningLink returns the first promotion link, which is the one shown on
// the card. ok is false when the brand has none.
func (b *BrandOffer) WinningLink() (link PromotionLink, ok bool) {
	if len(b.PromotionLinks) == 0 {
		return PromotionLink{}, false
	}
	return b.PromotionLinks[0], true
}

// BrandOfferCard is the flat, display-ready record rendered on the home page.
type BrandOfferCard struct {
	ID                    int64       `json:"id"`
	BrandName             string      `json:"brand_name"`
	Description           *string     `json:"description"`
	Slug                  *string     `json:"slug"`
	NewArrival            *string     `json:"new_arrival"`
	Updated               *string     `json:"updated"`
	SEOTitle              *string     `json:"seo_title"`
	SEOKeyword            *string     `json:"seo_keyword"`
	SEODescription        *string     `json:"seo_description"`
	ProductsDenominations *string     `json:"products_denominations"`
	DiscountValue         json.Number `json:"discount_value"`
	OfferType             string      `json:"offer_type"`
	Promocode             *string     `json:"promocode"`
	ShortDesc             *string     `json:"short_desc"`
}
