// Package metrics holds Prometheus instruments that are used across the
// platform.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ActiveSites = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sites",
			Help: "Number of site records currently cached in memory.",
		})

	SiteLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_load_total",
			Help: "Cumulative number of site records successfully loaded.",
		})

	SiteLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_load_errors_total",
			Help: "Cumulative number of site record load errors.",
		})

	SiteEvictTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_evict_total",
			Help: "Cumulative number of site records evicted from the cache.",
		})

	PageRenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_render_total",
			Help: "Cumulative number of tenant pages rendered, by template.",
		},
		[]string{"template"})

	ContentSaveTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_save_total",
			Help: "Cumulative number of page documents saved from the editor.",
		})

	ContentSaveErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_save_errors_total",
			Help: "Cumulative number of page document save failures.",
		})

	SiteCreateTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_create_total",
			Help: "Cumulative number of sites created.",
		})
)

func init() {
	prometheus.MustRegister(
		ActiveSites,
		SiteLoadTotal,
		SiteLoadErrorsTotal,
		SiteEvictTotal,
		PageRenderTotal,
		ContentSaveTotal,
		ContentSaveErrorsTotal,
		SiteCreateTotal,
	)
}
