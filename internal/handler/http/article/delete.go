package article

import (
	"errors"
	"net/http"

	"knowbase/internal/handler/http/auth"
	"knowbase/internal/handler/http/pathutil"
	"knowbase/internal/handler/http/respond"
	"knowbase/internal/observability/metrics"
	artUC "knowbase/internal/usecase/article"
)

type DeleteHandler struct{ Svc artUC.Service }

// ServeHTTP deletes one of the caller's articles. Unlike the read path,
// delete distinguishes an absent article (404) from one owned by another
// user (403).
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, auth.ErrMissingCredential)
		return
	}

	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, artUC.ErrArticleNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), ident.UserID, id); err != nil {
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.Is(err, artUC.ErrNotOwner):
			respond.SafeError(w, http.StatusForbidden, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	metrics.ArticlesDeletedTotal.Inc()
	respond.JSON(w, http.StatusOK, map[string]any{"message": "article deleted"})
}
