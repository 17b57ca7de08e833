package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/riseagainX/orm/internal/domain"
	"github.com/riseagainX/orm/pkg/database"
	apperrors "github.com/riseagainX/orm/pkg/errors"
)

const getActivePageContentQuery = `
	SELECT title, banner, mob_banner, carausel1, carausel2, carausel3,
	       seo_title, seo_keyword, seo_description, description
	FROM page_contents
	WHERE status = $1 AND upper(title) = $2
	ORDER BY id
	LIMIT 1`

// PageContentRepository implements page content reads using PostgreSQL.
type PageContentRepository struct {
	pool database.DBTX
}

// NewPageContentRepository creates a new PostgreSQL-backed page content repository.
func NewPageContentRepository(pool database.DBTX) *PageContentRepository {
	return &PageContentRepository{pool: pool}
}

// GetActiveByTitle loads the active page content row whose title matches the
// upper-case title regardless of how the row is stored. A missing row is reported as apperrors.ErrNotFound and is not recorded as a span error.
func (r *PageContentRepository) GetActiveByTitle(ctx context.Context, title string) (*domain.PageContent, error) {
	ctx, end := database.TraceQuery(ctx, "GetActivePageContent", getActivePageContentQuery)

	var c domain.PageContent
	err := r.pool.QueryRow(ctx, getActivePageContentQuery, domain.StatusActive, title).Scan(
		&c.Title,
		&c.Banner,
		&c.MobBanner,
		&c.Carausel1,
		&c.Carausel2,
		&c.Carausel3,
		&c.SEOTitle,
		&c.SEOKeyword,
		&c.SEODescription,
		&c.Description,
	)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		end(nil)
		return nil, apperrors.ErrNotFound
	case err != nil:
		end(err)
		return nil, fmt.Errorf("scan page content %q: %w", title, err)
	}

	end(nil)
	return &c, nil
}
