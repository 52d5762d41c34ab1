package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job8earch_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ChatRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job8earch_chat_requests_total",
			Help: "Total number of chat completion requests by outcome.",
		},
		[]string{"outcome", "model"},
	)
	ChatRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "job8earch_chat_request_duration_seconds",
			Help:    "Duration of chat completion round trips in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)
	SearchesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "job8earch_catalog_searches_total",
			Help: "Total number of catalog searches.",
		},
	)
	SearchDuration = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name:       "job8earch_catalog_search_duration_seconds",
			Help:       "Duration of catalog searches in seconds.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ChatRequestsCounter)
	prometheus.MustRegister(ChatRequestDuration)
	prometheus.MustRegister(SearchesCounter)
	prometheus.MustRegister(SearchDuration)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
