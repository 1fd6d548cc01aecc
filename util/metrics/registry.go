// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the daemon's collectors. Every daemon instance has its own,
// so tests can run several side by side.
type Registry struct {
	reg *prometheus.Registry

	keypairs      prometheus.Counter
	signatures    prometheus.Counter
	opens         *prometheus.CounterVec
	batchRequests prometheus.Counter
	batchItems    *prometheus.CounterVec
	batchSize     prometheus.Histogram
	apiRequests   *prometheus.CounterVec
	apiDuration   *prometheus.HistogramVec
}

func counterOpts(metric MetricName) prometheus.CounterOpts {
	return prometheus.CounterOpts{Name: metric.Name, Help: metric.Description}
}

// MakeRegistry creates a registry with the service collectors plus the Go
// runtime and process collectors.
func MakeRegistry() *Registry {
	r := &Registry{
		reg:           prometheus.NewRegistry(),
		keypairs:      prometheus.NewCounter(counterOpts(CryptoKeypairsGeneratedTotal)),
		signatures:    prometheus.NewCounter(counterOpts(CryptoSignaturesTotal)),
		opens:         prometheus.NewCounterVec(counterOpts(CryptoOpenTotal), []string{"result"}),
		batchRequests: prometheus.NewCounter(counterOpts(BatchRequestsTotal)),
		batchItems:    prometheus.NewCounterVec(counterOpts(BatchItemsTotal), []string{"result"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    BatchSize.Name,
			Help:    BatchSize.Description,
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		apiRequests: prometheus.NewCounterVec(counterOpts(APIRequestsTotal), []string{"route", "code"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    APIRequestDuration.Name,
			Help:    APIRequestDuration.Description,
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
	r.reg.MustRegister(
		r.keypairs, r.signatures, r.opens,
		r.batchRequests, r.batchItems, r.batchSize,
		r.apiRequests, r.apiDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// KeypairGenerated counts one generated keypair.
func (r *Registry) KeypairGenerated() {
	r.keypairs.Inc()
}

// MessageSigned counts one signature.
func (r *Registry) MessageSigned() {
	r.signatures.Inc()
}

// MessageOpened counts one single open by its result.
func (r *Registry) MessageOpened(valid bool) {
	r.opens.WithLabelValues(resultLabel(valid)).Inc()
}

// BatchOpened records one batch request and the results of its items.
func (r *Registry) BatchOpened(valid, invalid int) {
	r.batchRequests.Inc()
	r.batchSize.Observe(float64(valid + invalid))
	r.batchItems.WithLabelValues(ResultValid).Add(float64(valid))
	r.batchItems.WithLabelValues(ResultInvalid).Add(float64(invalid))
}

// RequestServed records one REST request.
func (r *Registry) RequestServed(route string, code int, elapsed time.Duration) {
	r.apiRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	r.apiDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func resultLabel(valid bool) string {
	if valid {
		return ResultValid
	}
	return ResultInvalid
}
