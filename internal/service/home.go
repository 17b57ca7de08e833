package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riseagainX/orm/internal/domain"
	apperrors "github.com/riseagainX/orm/pkg/errors"
)

// home builds the HOME payload in four sequential steps: static content,
// the eligibility join, one batched promocode lookup and the reduction to
// cards. The promocode lookup is skipped when no brand qualifies.
func (s *PageService) home(ctx context.Context) (*domain.HomePage, error) {
	content, err := s.content(ctx, domain.PageHome)
	if err != nil {
		return nil, err
	}

	offers, err := s.brands.ListEligible(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "list eligible brands")
	}
	if len(offers) == 0 {
		homeBrandCards.Observe(0)
		return &domain.HomePage{PageContent: content, Brands: []domain.BrandOfferCard{}}, nil
	}

	s.logTieBreaks(ctx, offers)

	codes, err := s.resolvePromocodes(ctx, domain.DistinctPromotionIDs(offers))
	if err != nil {
		return nil, err
	}

	cards := domain.ReduceBrandOffers(offers, codes)
	homeBrandCards.Observe(float64(len(cards)))

	s.log(ctx).DebugContext(ctx, "home page assembled",
		slog.Int("eligible_brands", len(offers)),
		slog.Int("cards", len(cards)),
		slog.Int("promocodes", len(codes)),
	)

	return &domain.HomePage{PageContent: content, Brands: cards}, nil
}

// resolvePromocodes maps each promotion to its first redeemable code using a
// single query.
func (s *PageService) resolvePromocodes(ctx context.Context, promotionIDs []int64) (map[int64]string, error) {
	if len(promotionIDs) == 0 {
		return map[int64]string{}, nil
	}

	homePromocodeLookups.Inc()
	rows, err := s.promocodes.ListRedeemable(ctx, promotionIDs)
	if err != nil {
		return nil, apperrors.Wrap(err, fmt.Sprintf("list promocodes for %d promotions", len(promotionIDs)))
	}
	return domain.PromocodesByPromotion(rows), nil
}

func (s *PageService) logTieBreaks(ctx context.Context, offers []domain.BrandOffer) {
	l := s.log(ctx)
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for i := range offers {
		links := offers[i].PromotionLinks
		if len(links) < 2 {
			continue
		}
		ignored := make([]int64, 0, len(links)-1)
		for _, link := range links[1:] {
			ignored = append(ignored, link.ID)
		}
		l.DebugContext(ctx, "brand has several promotion links, using the first",
			slog.Int64("brand_id", offers[i].Brand.ID),
			slog.Int64("link_id", links[0].ID),
			slog.Any("ignored_link_ids", ignored),
		)
	}
}
