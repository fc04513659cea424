package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	translationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uwtm_translations_total",
		Help: "Number of two-tape descriptions translated (cache misses).",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uwtm_cache_hits_total",
		Help: "Number of translations served from the table cache.",
	})
	tableRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "uwtm_table_rows",
		Help:    "Rows per emitted single-tape table.",
		Buckets: prometheus.ExponentialBuckets(64, 4, 10),
	})
)
