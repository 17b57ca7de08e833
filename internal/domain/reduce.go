package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// DistinctPromotionIDs collects the winning promotion id of every brand,
// without duplicates, in first-appearance order.
func DistinctPromotionIDs(offers []BrandOffer) []int64 {
	ids := make([]int64, 0, len(offers))
	seen := make(map[int64]struct{}, len(offers))
	for i := range offers {
		link, ok := offers[i].WinningLink()
		if !ok {
			continue
		}
		id := link.Promotion.ID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Promocode pairs a redeemable code with its promotion.
type Promocode struct {
	PromotionID int64
	Code        string
}

// PromocodesByPromotion maps each promotion to the first of its codes in
// rows. Later codes for the same promotion are ignored.
func PromocodesByPromotion(rows []Promocode) map[int64]string {
	out := make(map[int64]string, len(rows))
	for _, row := range rows {
		if _, exists := out[row.PromotionID]; !exists {
			out[row.PromotionID] = row.Code
		}
	}
	return out
}

// JoinDenominations renders prices as a comma-separated list in canonical
// decimal form ("100,250"). It returns nil for an empty list.
func JoinDenominations(prices []decimal.Decimal) *string {
	if len(prices) == 0 {
		return nil
	}
	parts := make([]string, len(prices))
	for i, p := range prices {
		parts[i] = p.String()
	}
	joined := strings.Join(parts, ",")
	return &joined
}

// ReduceBrandOffers flattens offers into cards, keeping their order. Brands
// without a promotion link are skipped. A promotion with no entry in codes,
// or an empty code, gets a nil promocode.
func ReduceBrandOffers(offers []BrandOffer, codes map[int64]string) []BrandOfferCard {
	cards := make([]BrandOfferCard, 0, len(offers))
	for i := range offers {
		offer := &offers[i]
		link, ok := offer.WinningLink()
		if !ok {
			continue
		}

		var promocode *string
		if code := codes[link.Promotion.ID]; code != "" {
			promocode = &code
		}

		b := offer.Brand
		cards = append(cards, BrandOfferCard{
			ID:                    b.ID,
			BrandName:             b.Name,
			Description:           b.Description,
			Slug:                  b.Slug,
			NewArrival:            b.NewArrival,
			Updated:               b.Updated,
			SEOTitle:              b.SEOTitle,
			SEOKeyword:            b.SEOKeyword,
			SEODescription:        b.SEODescription,
			ProductsDenominations: JoinDenominations(offer.Prices),
			DiscountValue:         json.Number(link.Promotion.Value.String()),
			OfferType:             link.Promotion.OfferType,
			Promocode:             promocode,
			ShortDesc:             link.ShortDesc,
		})
	}
	return cards
}
