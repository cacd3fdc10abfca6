package article

import (
	"log/slog"
	"net/http"
	"time"

	"knowbase/internal/handler/http/auth"
	"knowbase/internal/handler/http/respond"
	"knowbase/internal/observability/logging"
	"knowbase/internal/pkg/search"
	artUC "knowbase/internal/usecase/article"
)

type ListHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

// ServeHTTP lists the caller's articles, optionally filtered by the
// `query` keyword and `tags` parameters, ordered newest first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	ident, ok := auth.IdentityFromContext(ctx)
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, auth.ErrMissingCredential)
		return
	}

	logger := logging.WithRequestID(ctx, h.Logger)

	q := search.Parse(r.URL.Query().Get("query"), r.URL.Query().Get("tags"))

	articles, err := h.Svc.List(ctx, ident.UserID, q)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"user_id", ident.UserID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}

	logger.Info("articles listed",
		"user_id", ident.UserID,
		"keyword", q.Keyword,
		"tag_count", len(q.Tags),
		"returned_count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.JSON(w, http.StatusOK, map[string]any{"articles": dtos})
}
