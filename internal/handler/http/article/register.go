package article

import (
	"log/slog"
	"net/http"

	"knowbase/internal/handler/http/auth"
	artUC "knowbase/internal/usecase/article"
	summaryUC "knowbase/internal/usecase/summary"
)

// Register mounts the article routes on mux. Every route requires a valid
// bearer token.
func Register(mux *http.ServeMux, verifier *auth.Verifier, articles artUC.Service, summaries *summaryUC.Service, logger *slog.Logger) {
	protect := auth.Middleware(verifier)

	mux.Handle("GET /articles", protect(ListHandler{Svc: articles, Logger: logger}))
	mux.Handle("POST /articles", protect(CreateHandler{Svc: articles}))
	mux.Handle("GET /articles/{id}", protect(GetHandler{Svc: articles}))
	mux.Handle("DELETE /articles/{id}", protect(DeleteHandler{Svc: articles}))
	mux.Handle("POST /articles/{id}/summarize", protect(SummarizeHandler{Svc: summaries, Logger: logger}))
}
