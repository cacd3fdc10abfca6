package article

import (
	"errors"
	"net/http"

	"knowbase/internal/handler/http/auth"
	"knowbase/internal/handler/http/pathutil"
	"knowbase/internal/handler/http/respond"
	artUC "knowbase/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP returns a single article owned by the caller. A malformed id,
// an absent id, and someone else's article all answer 404: the read path
// never reveals whether a record exists.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	article, err := h.Svc.Get(r.Context(), ident.UserID, id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrArticleNotFound) || errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusNotFound
			err = artUC.ErrArticleNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"article": toDTO(article)})
}
