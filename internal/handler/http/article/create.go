package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"knowbase/internal/domain/entity"
	"knowbase/internal/handler/http/auth"
	"knowbase/internal/handler/http/respond"
	"knowbase/internal/observability/metrics"
	artUC "knowbase/internal/usecase/article"
)

type createRequest struct {
	Title string          `json:"title"`
	Body  string          `json:"body"`
	Tags  json.RawMessage `json:"tags"`
}

type CreateHandler struct{ Svc artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, auth.ErrMissingCredential)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.Svc.Create(r.Context(), ident.UserID, artUC.CreateInput{
		Title: req.Title,
		Body:  req.Body,
		Tags:  normalizeTags(req.Tags),
	})
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.Error(w, http.StatusBadRequest, verr)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.ArticlesCreatedTotal.Inc()
	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "article created successfully",
		"article": toDTO(created),
	})
}
