package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func prices(t *testing.T, values ...string) []decimal.Decimal {
	t.Helper()
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		require.NoError(t, err)
		out[i] = d
	}
	return out
}

func link(id, promotionID int64, value string) PromotionLink {
	return PromotionLink{
		ID:        id,
		ShortDesc: strPtr("Flat discount"),
		Promotion: Promotion{ID: promotionID, Value: decimal.RequireFromString(value), OfferType: OfferTypeDiscount},
	}
}

func TestJoinDenominations(t *testing.T) {
	assert.Nil(t, JoinDenominations(nil))
	assert.Equal(t, "100,250", *JoinDenominations(prices(t, "100.00", "250.00")))
	assert.Equal(t, "12.5,99.99,500", *JoinDenominations(prices(t, "12.50", "99.99", "500")))
	assert.Equal(t, "250,100", *JoinDenominations(prices(t, "250", "100")), "order must be preserved")
}

func TestDistinctPromotionIDs_FirstAppearanceOrder(t *testing.T) {
	offers := []BrandOffer{
		{Brand: Brand{ID: 1}, PromotionLinks: []PromotionLink{link(10, 9, "5"), link(11, 3, "5")}},
		{Brand: Brand{ID: 2}, PromotionLinks: []PromotionLink{link(12, 7, "5")}},
		{Brand: Brand{ID: 3}},
		{Brand: Brand{ID: 4}, PromotionLinks: []PromotionLink{link(13, 9, "5")}},
	}
	assert.Equal(t, []int64{9, 7}, DistinctPromotionIDs(offers))
	assert.Empty(t, DistinctPromotionIDs(nil))
}

func TestPromocodesByPromotion_FirstSeenWins(t *testing.T) {
	codes := PromocodesByPromotion([]Promocode{
		{PromotionID: 7, Code: "SAVE15"},
		{PromotionID: 8, Code: "GIFT5"},
		{PromotionID: 7, Code: "LATER"},
	})
	assert.Equal(t, map[int64]string{7: "SAVE15", 8: "GIFT5"}, codes)
}

func TestReduceBrandOffers_WithPromocode(t *testing.T) {
	offers := []BrandOffer{{
		Brand: Brand{
			ID: 42, Name: "Acme", Slug: strPtr("acme"),
			NewArrival: strPtr("Y"), SEOTitle: strPtr("Acme gift cards"),
		},
		Prices:         prices(t, "100.00", "250.00"),
		PromotionLinks: []PromotionLink{link(1, 7, "15.00")},
	}}

	cards := ReduceBrandOffers(offers, map[int64]string{7: "SAVE15"})
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, int64(42), card.ID)
	assert.Equal(t, "Acme", card.BrandName)
	assert.Equal(t, "100,250", *card.ProductsDenominations)
	assert.Equal(t, json.Number("15"), card.DiscountValue)
	assert.Equal(t, "DIS", card.OfferType)
	require.NotNil(t, card.Promocode)
	assert.Equal(t, "SAVE15", *card.Promocode)
	assert.Equal(t, "Flat discount", *card.ShortDesc)
	assert.Equal(t, "Y", *card.NewArrival)

	b, err := json.Marshal(card)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, float64(15), decoded["discount_value"])
	assert.Equal(t, "100,250", decoded["products_denominations"])
}

func TestReduceBrandOffers_NoPromocode(t *testing.T) {
	offers := []BrandOffer{{
		Brand:          Brand{ID: 42, Name: "Acme"},
		Prices:         prices(t, "100", "250"),
		PromotionLinks: []PromotionLink{link(1, 7, "15")},
	}}

	for name, codes := range map[string]map[int64]string{
		"missing": {8: "OTHER"},
		"empty":   {7: ""},
		"nil map": nil,
	} {
		t.Run(name, func(t *testing.T) {
			cards := ReduceBrandOffers(offers, codes)
			require.Len(t, cards, 1)
			assert.Nil(t, cards[0].Promocode)
			assert.Equal(t, "100,250", *cards[0].ProductsDenominations)
			assert.Equal(t, json.Number("15"), cards[0].DiscountValue)
		})
	}
}

func TestReduceBrandOffers_SkipsAndOrders(t *testing.T) {
	offers := []BrandOffer{
		{Brand: Brand{ID: 3, Name: "C"}, Prices: prices(t, "10"), PromotionLinks: []PromotionLink{link(1, 1, "5")}},
		{Brand: Brand{ID: 1, Name: "A"}, Prices: prices(t, "20")},
		{Brand: Brand{ID: 2, Name: "B"}, PromotionLinks: []PromotionLink{link(2, 2, "7.5"), link(3, 3, "50")}},
	}

	cards := ReduceBrandOffers(offers, nil)
	require.Len(t, cards, 2)
	assert.Equal(t, int64(3), cards[0].ID)
	assert.Equal(t, int64(2), cards[1].ID)

	// first link in query order wins
	assert.Equal(t, json.Number("7.5"), cards[1].DiscountValue)
	assert.Nil(t, cards[1].ProductsDenominations)
}

func TestReduceBrandOffers_EmptyInputGivesEmptySlice(t *testing.T) {
	cards := ReduceBrandOffers(nil, nil)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}
