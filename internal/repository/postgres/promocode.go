package postgres

import (
	"context"
	"fmt"

	"github.com/riseagainX/orm/internal/domain"
	"github.com/riseagainX/orm/pkg/database"
)

// A code is redeemable when it is VALID, today falls inside its validity
// window, and it is multi-use or a single-use code that has been blasted.
const listRedeemablePromocodesQuery = `
	SELECT promotion_id, promocode
	FROM promocodes
	WHERE promotion_id = ANY($1)
	  AND status = $2
	  AND start_date <= CURRENT_DATE
	  AND expiry_date >= CURRENT_DATE
	  AND (usage_type = $3 OR (usage_type = $4 AND blasted = $5))
	ORDER BY id`

// PromocodeRepository implements promocode reads using PostgreSQL.
type PromocodeRepository struct {
	pool database.DBTX
}

// NewPromocodeRepository creates a new PostgreSQL-backed promocode repository.
func NewPromocodeRepository(pool database.DBTX) *PromocodeRepository {
	return &PromocodeRepository{pool: pool}
}

// ListRedeemable fetches the redeemable codes of all promotionIDs in a
// single query. An empty id list issues no query.
func (r *PromocodeRepository) ListRedeemable(ctx context.Context, promotionIDs []int64) (_ []domain.Promocode, err error) {
	if len(promotionIDs) == 0 {
		return []domain.Promocode{}, nil
	}

	ctx, end := database.TraceQuery(ctx, "ListRedeemablePromocodes", listRedeemablePromocodesQuery)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, listRedeemablePromocodesQuery,
		promotionIDs,
		domain.PromocodeStatusValid,
		domain.PromocodeUsageMulti,
		domain.PromocodeUsageSingle,
		domain.PromocodeBlasted,
	)
	if err != nil {
		return nil, fmt.Errorf("list redeemable promocodes: %w", err)
	}
	defer rows.Close()

	codes := []domain.Promocode{}
	for rows.Next() {
		var c domain.Promocode
		if err := rows.Scan(&c.PromotionID, &c.Code); err != nil {
			return nil, fmt.Errorf("scan promocode row: %w", err)
		}
		codes = append(codes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promocode rows: %w", err)
	}

	return codes, nil
}
