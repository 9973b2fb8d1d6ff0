// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus collectors of the face service.
//
// Collectors are registered on an injected prometheus.Registerer so tests
// can use a private registry. Metric names:
//
//	faceid_operations_total{operation,status}
//	faceid_embedding_extraction_seconds
//	faceid_enrolled_faces
//	faceid_terminated_accounts
//	faceid_http_requests_total{method,code}
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-face-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "faceid"

// Options configures New.
type Options struct {
	// Registerer receives the collectors. Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// Gatherer backs Handler. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	Namespace string

	// Buckets of the extraction latency histogram.
	Buckets []float64
}

// Metrics groups every collector of the service.
type Metrics struct {
	Operations   *prometheus.CounterVec
	Extraction   prometheus.Histogram
	Enrolled     prometheus.Gauge
	Terminated   prometheus.Gauge
	HTTPRequests *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them. Collectors already
// registered under the same name are reused.
func New(opts Options) (*Metrics, error) {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	buckets := opts.Buckets
	if len(buckets) == 0 {
		buckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	}

	operations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Finished enroll and verify attempts partitioned by operation and result status.",
	}, []string{"operation", "status"}))
	if err != nil {
		return nil, err
	}

	extraction, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "embedding_extraction_seconds",
		Help:      "Latency of embedding oracle calls in seconds.",
		Buckets:   buckets,
	}))
	if err != nil {
		return nil, err
	}

	enrolled, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "enrolled_faces",
		Help:      "Number of stored face records.",
	}))
	if err != nil {
		return nil, err
	}

	terminated, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "terminated_accounts",
		Help:      "Number of accounts in the termination log.",
	}))
	if err != nil {
		return nil, err
	}

	httpRequests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests partitioned by method and status code.",
	}, []string{"method", "code"}))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		Operations:   operations,
		Extraction:   extraction,
		Enrolled:     enrolled,
		Terminated:   terminated,
		HTTPRequests: httpRequests,
		gatherer:     gatherer,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return c, fmt.Errorf("register collector: %w", err)
		}
		existing, ok := already.ExistingCollector.(C)
		if !ok {
			return c, fmt.Errorf("existing collector has unexpected type %T", already.ExistingCollector)
		}
		return existing, nil
	}
	return c, nil
}

// ObserveOutcome counts one finished enroll or verify attempt.
func (m *Metrics) ObserveOutcome(operation string, status models.Status) {
	m.Operations.WithLabelValues(operation, status.String()).Inc()
}

// ObserveExtraction records the latency of one oracle call.
func (m *Metrics) ObserveExtraction(elapsed time.Duration) {
	m.Extraction.Observe(elapsed.Seconds())
}

// SetStoreStats publishes the current store sizes.
func (m *Metrics) SetStoreStats(enrolled, terminated int) {
	m.Enrolled.Set(float64(enrolled))
	m.Terminated.Set(float64(terminated))
}

// ObserveHTTPRequest counts one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method string, code int) {
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

// Handler exposes the gathered metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
