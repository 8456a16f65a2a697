// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// # HTTP Metrics

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daylist",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed, by method, route pattern and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "daylist",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)
)

// Metrics records a Prometheus counter and latency histogram for every request.
//
// # Cardinality
//
// The route label uses the raw URL path for unmatched routes, so this
// middleware should run inside the router where chi has already resolved the
// route pattern; otherwise per-ID paths would explode the label space.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()

			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(wrappedWriter, request)

			route := routePattern(request)
			httpRequestsTotal.WithLabelValues(
				request.Method,
				route,
				strconv.Itoa(wrappedWriter.status),
			).Inc()
			httpRequestDuration.WithLabelValues(
				request.Method,
				route,
			).Observe(time.Since(startTime).Seconds())
		})
	}
}

// routePattern resolves the chi route pattern for the finished request,
// falling back to the raw path when no pattern matched.
func routePattern(request *http.Request) string {
	if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
		if pattern := routeContext.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return request.URL.Path
}
