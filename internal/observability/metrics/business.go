// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track knowledgebase activity.
var (
	// ArticlesCreatedTotal counts successfully created articles.
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kb_articles_created_total",
			Help: "Total number of articles created",
		},
	)

	// ArticlesDeletedTotal counts successfully deleted articles.
	ArticlesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kb_articles_deleted_total",
			Help: "Total number of articles deleted",
		},
	)

	// SummariesTotal counts summarize operations by source branch
	// (provider vs fallback). A rising fallback share signals provider
	// degradation before users ever notice.
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kb_summaries_total",
			Help: "Total number of summaries served, by source (provider or fallback)",
		},
		[]string{"source"},
	)

	// AuthFailuresTotal counts rejected requests by failure class.
	AuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kb_auth_failures_total",
			Help: "Total number of rejected requests, by failure class (unauthenticated or forbidden)",
		},
		[]string{"class"},
	)
)
