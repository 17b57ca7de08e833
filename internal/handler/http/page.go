package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riseagainX/orm/internal/service"
	"github.com/riseagainX/orm/pkg/httputil"
	"github.com/riseagainX/orm/pkg/validator"
)

// PageHandler handles HTTP requests for page content endpoints.
type PageHandler struct {
	service *service.PageService
	logger  *slog.Logger
}

// NewPageHandler creates a new page HTTP handler.
func NewPageHandler(svc *service.PageService, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		service: svc,
		logger:  logger,
	}
}

// pageParams are the path parameters of GET /api/v1/pages/{title}. Whether
// the title names a known page is decided by the service.
type pageParams struct {
	Title string `param:"title" validate:"required,max=64"`
}

// GetPage handles GET /api/v1/pages/{title}.
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	params := pageParams{Title: chi.URLParam(r, "title")}
	if err := validator.Validate(params); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	page, err := h.service.GetPageContent(r.Context(), params.Title)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
}
