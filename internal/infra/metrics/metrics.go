package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_fetches_total",
			Help: "The total number of upstream fetches",
		},
		[]string{"provider", "mode", "status"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_fetch_duration_seconds",
			Help:    "Duration of upstream fetches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	AuthFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_auth_fallbacks_total",
			Help: "Times the header credential was rejected and the URL credential was tried",
		},
		[]string{"provider"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_cache_hits_total",
			Help: "Result cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_cache_misses_total",
			Help: "Result cache misses, including expired entries",
		},
	)

	QueryTriggers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_query_triggers_total",
			Help: "Controller triggers by kind (debounced or refetch)",
		},
		[]string{"kind"},
	)

	StaleResponsesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_stale_responses_dropped_total",
			Help: "Responses discarded because a newer query superseded them",
		},
	)

	ArticleStoreCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_article_store_collisions_total",
			Help: "Slug collisions disambiguated by the cross-navigation article store",
		},
	)
)
