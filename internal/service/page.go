package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/riseagainX/orm/internal/domain"
	"github.com/riseagainX/orm/internal/repository"
	apperrors "github.com/riseagainX/orm/pkg/errors"
	"github.com/riseagainX/orm/pkg/logger"
	"github.com/riseagainX/orm/pkg/tracing"
)

var tracer = tracing.Tracer("github.com/riseagainX/orm/internal/service")

// PageService builds page payloads. It holds no per-request state and is
// safe for concurrent use.
type PageService struct {
	contents   repository.PageContentRepository
	brands     repository.BrandOfferRepository
	promocodes repository.PromocodeRepository
	logger     *slog.Logger
}

// NewPageService creates a new page service.
func NewPageService(
	contents repository.PageContentRepository,
	brands repository.BrandOfferRepository,
	promocodes repository.PromocodeRepository,
	logger *slog.Logger,
) *PageService {
	return &PageService{
		contents:   contents,
		brands:     brands,
		promocodes: promocodes,
		logger:     logger,
	}
}

// GetPageContent resolves title to a page kind and builds its payload. An
// unsupported title fails with an UNSUPPORTED_PAGE error before any query
// runs. Collaborator failures are returned as INTERNAL_ERROR.
func (s *PageService) GetPageContent(ctx context.Context, title string) (domain.PageResult, error) {
	kind, err := domain.ParsePageKind(title)
	if err != nil {
		pageRequestsTotal.WithLabelValues(kindUnknown, resultUnsupported).Inc()
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "PageService.GetPageContent")
	defer span.End()
	span.SetAttributes(attribute.String("page.kind", kind.String()))

	var result domain.PageResult
	if kind.IsHome() {
		result, err = s.home(ctx)
	} else {
		result, err = s.simple(ctx, kind)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		pageRequestsTotal.WithLabelValues(kind.String(), resultError).Inc()
		return nil, apperrors.Internal(err)
	}

	pageRequestsTotal.WithLabelValues(kind.String(), resultOK).Inc()
	return result, nil
}

func (s *PageService) simple(ctx context.Context, kind domain.PageKind) (*domain.SimplePage, error) {
	content, err := s.content(ctx, kind)
	if err != nil {
		return nil, err
	}
	return &domain.SimplePage{PageKind: kind, PageContent: content}, nil
}

// content loads the static record of kind. A missing record is not an
// error: the page simply has no content.
func (s *PageService) content(ctx context.Context, kind domain.PageKind) (*domain.PageContent, error) {
	content, err := s.contents.GetActiveByTitle(ctx, kind.String())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.log(ctx).DebugContext(ctx, "no active page content", slog.String("kind", kind.String()))
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "get "+kind.String()+" page content")
	}
	return content, nil
}

// log prefers the request-scoped logger so lines carry correlation and trace ids.
func (s *PageService) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != slog.Default() {
		return l
	}
	return s.logger
}
