// Package metrics owns the process prometheus collectors
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mastoshim"

var (
	mapperRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mapper_rejected_total",
		Help:      "Records dropped by schema validation, by entity.",
	}, []string{"entity"})

	restResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rest_responses_total",
		Help:      "Responses written by the REST adapter, by status code.",
	}, []string{"status"})

	graphqlDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "graphql_request_duration_seconds",
		Help:      "Duration in seconds of GraphQL calls made to the platform.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration in seconds of API requests, by method, route pattern and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	platformQueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "platform_query_duration_seconds",
		Help:      "Duration in seconds of direct reads against the platform database.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query", "outcome"})
)

func init() {
	prometheus.MustRegister(mapperRejected, restResponses, graphqlDuration, httpDuration, platformQueryDuration)
}

// MapperRejected counts a record that failed validation
func MapperRejected(entity string) { mapperRejected.WithLabelValues(entity).Inc() }

// RESTResponse counts a response written with status
func RESTResponse(status int) { restResponses.WithLabelValues(strconv.Itoa(status)).Inc() }

// ObserveGraphQL records the latency of one platform call
func ObserveGraphQL(operation, outcome string, elapsed time.Duration) {
	graphqlDuration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

// ObserveHTTP records one served request; route is the chi pattern, not the raw path
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// ObservePlatformQuery records the latency of one database statement
func ObservePlatformQuery(query, outcome string, elapsed time.Duration) {
	platformQueryDuration.WithLabelValues(query, outcome).Observe(elapsed.Seconds())
}

// Handler serves the default registry in the prometheus text format
func Handler() http.Handler { return promhttp.Handler() }
