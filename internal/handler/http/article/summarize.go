package article

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"knowbase/internal/handler/http/auth"
	"knowbase/internal/handler/http/respond"
	"knowbase/internal/observability/logging"
	summaryUC "knowbase/internal/usecase/summary"
)

type summarizeRequest struct {
	ArticleBody string `json:"articleBody"`
}

type SummarizeHandler struct {
	Svc    *summaryUC.Service
	Logger *slog.Logger
}

// ServeHTTP summarizes the text submitted in the request body. The article
// id in the path only labels the summary; the store is never consulted, so
// the only client error is an empty articleBody.
func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := auth.IdentityFromContext(ctx)
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, auth.ErrMissingCredential)
		return
	}

	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	result, err := h.Svc.Summarize(ctx, r.PathValue("id"), req.ArticleBody)
	if err != nil {
		if errors.Is(err, summaryUC.ErrEmptyBody) {
			respond.Error(w, http.StatusBadRequest, errors.New("articleBody is required"))
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logging.WithRequestID(ctx, h.Logger).Info("article summarized",
		"user_id", ident.UserID,
		"article_id", r.PathValue("id"),
		"source", string(result.Source))

	respond.JSON(w, http.StatusOK, map[string]any{"summary": result.Text})
}
