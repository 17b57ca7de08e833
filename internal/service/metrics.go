package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for pageRequestsTotal. Titles outside the known page kinds
// are counted under kindUnknown so the kind label stays bounded.
const (
	kindUnknown = "unknown"

	resultOK          = "ok"
	resultError       = "error"
	resultUnsupported = "unsupported"
)

var (
	pageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_content_requests_total",
			Help: "Page content requests by page kind and outcome",
		},
		[]string{"kind", "result"},
	)

	homeBrandCards = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "home_brand_cards",
			Help:    "Number of brand offer cards rendered per HOME request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	homePromocodeLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "home_promocode_lookups_total",
			Help: "Batched promocode queries issued while building HOME",
		},
	)
)
