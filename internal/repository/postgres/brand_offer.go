package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/riseagainX/orm/internal/domain"
	"github.com/riseagainX/orm/pkg/database"
)

// listEligibleBrandsQuery returns one row per (brand, product, promotion
// link) combination. Category links only gate eligibility, so they sit in an
// EXISTS and never multiply rows. The ORDER BY fixes which promotion link
// comes first for each brand.
const listEligibleBrandsQuery = `
	SELECT b.id, b.name, b.description, b.slug, b.new_arrival::text, b.updated::text,
	       b.seo_title, b.seo_keyword, b.seo_description,
	       p.id, p.price::text,
	       pxp.id, pxp.short_desc,
	       pr.id, pr.value::text, pr.offer_type
	FROM brands b
	JOIN products p
	  ON p.brand_id = b.id
	 AND p.status = $1
	 AND p.available_qty > 0
	 AND p.expiry_date >= CURRENT_DATE
	JOIN promotion_x_products pxp
	  ON pxp.brand_id = b.id
	 AND pxp.status = $1
	 AND pxp.promotion_type = $2
	JOIN promotions pr
	  ON pr.id = pxp.promotion_id
	 AND pr.status = $1
	 AND pr.offer_type = $3
	WHERE b.status = $1
	  AND EXISTS (
	      SELECT 1
	      FROM brand_categories bc
	      JOIN categories c ON c.id = bc.category_id AND c.status = $1
	      WHERE bc.brand_id = b.id AND bc.status = $1
	  )
	ORDER BY b.id, p.id, pxp.id`

// BrandOfferRepository implements the home page eligibility join using PostgreSQL.
type BrandOfferRepository struct {
	pool database.DBTX
}

// NewBrandOfferRepository creates a new PostgreSQL-backed brand offer repository.
func NewBrandOfferRepository(pool database.DBTX) *BrandOfferRepository {
	return &BrandOfferRepository{pool: pool}
}

// eligibilityRow is one flattened row of listEligibleBrandsQuery.
type eligibilityRow struct {
	brand     domain.Brand
	productID int64
	price     decimal.Decimal
	linkID    int64
	shortDesc *string
	promotion domain.Promotion
}

// ListEligible runs the eligibility join and folds its rows into one
// BrandOffer per brand.
func (r *BrandOfferRepository) ListEligible(ctx context.Context) (_ []domain.BrandOffer, err error) {
	ctx, end := database.TraceQuery(ctx, "ListEligibleBrands", listEligibleBrandsQuery)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, listEligibleBrandsQuery,
		domain.StatusActive, domain.PromotionTypeDiscount, domain.OfferTypeDiscount)
	if err != nil {
		return nil, fmt.Errorf("list eligible brands: %w", err)
	}
	defer rows.Close()

	var flat []eligibilityRow
	for rows.Next() {
		var (
			row          eligibilityRow
			price, value string
		)
		if err := rows.Scan(
			&row.brand.ID,
			&row.brand.Name,
			&row.brand.Description,
			&row.brand.Slug,
			&row.brand.NewArrival,
			&row.brand.Updated,
			&row.brand.SEOTitle,
			&row.brand.SEOKeyword,
			&row.brand.SEODescription,
			&row.productID,
			&price,
			&row.linkID,
			&row.shortDesc,
			&row.promotion.ID,
			&value,
			&row.promotion.OfferType,
		); err != nil {
			return nil, fmt.Errorf("scan eligible brand row: %w", err)
		}

		if row.price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse price of product %d: %w", row.productID, err)
		}
		if row.promotion.Value, err = decimal.NewFromString(value); err != nil {
			return nil, fmt.Errorf("parse value of promotion %d: %w", row.promotion.ID, err)
		}

		flat = append(flat, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate eligible brand rows: %w", err)
	}

	return assembleBrandOffers(flat), nil
}

// assembleBrandOffers groups rows by brand id, keeping each product and each
// promotion link once, all in first-seen order.
func assembleBrandOffers(rows []eligibilityRow) []domain.BrandOffer {
	offers := make([]domain.BrandOffer, 0)
	brandIdx := make(map[int64]int)
	seenProducts := make(map[[2]int64]struct{})
	seenLinks := make(map[[2]int64]struct{})

	for _, row := range rows {
		i, ok := brandIdx[row.brand.ID]
		if !ok {
			i = len(offers)
			brandIdx[row.brand.ID] = i
			offers = append(offers, domain.BrandOffer{Brand: row.brand})
		}
		offer := &offers[i]

		if key := [2]int64{row.brand.ID, row.productID}; !contains(seenProducts, key) {
			seenProducts[key] = struct{}{}
			offer.Prices = append(offer.Prices, row.price)
		}
		if key := [2]int64{row.brand.ID, row.linkID}; !contains(seenLinks, key) {
			seenLinks[key] = struct{}{}
			offer.PromotionLinks = append(offer.PromotionLinks, domain.PromotionLink{
				ID:        row.linkID,
				ShortDesc: row.shortDesc,
				Promotion: row.promotion,
			})
		}
	}

	return offers
}

func contains(set map[[2]int64]struct{}, key [2]int64) bool {
	_, ok := set[key]
	return ok
}
