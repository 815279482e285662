/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"github.com/hyperledger/fabric-lib-go/common/metrics"
)

type SuccessType = string

var SuccessValues = map[bool]SuccessType{
	true:  "success",
	false: "failure",
}

const (
	OperationLabel = "operation"
	SuccessLabel   = "success"
)

const (
	namespace = "cartrade"
	subsystem = "dispatcher"
)

var durationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

func NewMetrics(p metrics.Provider) *Metrics {
	_, supportsGetters := p.(*Provider)
	return &Metrics{
		supportsGetters: supportsGetters,

		RequestsSent: p.NewCounter(metrics.CounterOpts{
			Namespace:    namespace,
			Subsystem:    subsystem,
			Name:         "requests_sent",
			Help:         "Total ledger requests dispatched",
			LabelNames:   []string{OperationLabel},
			StatsdFormat: "%{#fqname}.%{operation}",
		}),
		RequestsReceived: p.NewCounter(metrics.CounterOpts{
			Namespace:    namespace,
			Subsystem:    subsystem,
			Name:         "requests_received",
			Help:         "Total ledger requests completed",
			LabelNames:   []string{OperationLabel, SuccessLabel},
			StatsdFormat: "%{#fqname}.%{operation}.%{success}",
		}),
		RequestsFailed: p.NewCounter(metrics.CounterOpts{
			Namespace:    namespace,
			Subsystem:    subsystem,
			Name:         "requests_failed",
			Help:         "Total ledger requests that returned an error",
			LabelNames:   []string{OperationLabel},
			StatsdFormat: "%{#fqname}.%{operation}",
		}),
		RequestDuration: p.NewHistogram(metrics.HistogramOpts{
			Namespace:    namespace,
			Subsystem:    subsystem,
			Name:         "request_duration",
			Help:         "Duration of ledger requests in seconds",
			Buckets:      durationBuckets,
			LabelNames:   []string{OperationLabel, SuccessLabel},
			StatsdFormat: "%{#fqname}.%{operation}.%{success}",
		}),
		ActiveConnections: p.NewGauge(metrics.GaugeOpts{
			Namespace:    namespace,
			Subsystem:    subsystem,
			Name:         "active_connections",
			Help:         "Gateway connections currently open",
			StatsdFormat: "%{#fqname}",
		}),
	}
}

type Metrics struct {
	supportsGetters bool

	RequestsSent      metrics.Counter
	RequestsReceived  metrics.Counter
	RequestsFailed    metrics.Counter
	RequestDuration   metrics.Histogram
	ActiveConnections metrics.Gauge
}
