// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package utilmetric holds metric helpers shared by tunnel components.
package utilmetric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/tunnel/utils/wrappers"
)

// Averager tracks the count and the sum of its observations, from which a
// mean can be derived.
type Averager interface {
	Observe(float64)
}

type averager struct {
	count prometheus.Counter
	sum   prometheus.Gauge
}

func NewAverager(name, desc string, registerer prometheus.Registerer) (Averager, error) {
	errs := wrappers.Errs{}
	a := NewAveragerWithErrs(name, desc, registerer, &errs)
	return a, errs.Err
}

// NewAveragerWithErrs is NewAverager for callers registering several metrics
// at once. Registration failures are added to errs.
func NewAveragerWithErrs(name, desc string, registerer prometheus.Registerer, errs *wrappers.Errs) Averager {
	a := &averager{
		count: prometheus.NewCounter(prometheus.CounterOpts{
			Name: AppendNamespace(name, "count"),
			Help: "Total # of observations of " + desc,
		}),
		sum: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: AppendNamespace(name, "sum"),
			Help: "Sum of " + desc,
		}),
	}
	errs.Add(
		registerer.Register(a.count),
		registerer.Register(a.sum),
	)
	return a
}

func (a *averager) Observe(v float64) {
	a.count.Inc()
	a.sum.Add(v)
}

// AppendNamespace joins metric name parts with an underscore, skipping an
// empty prefix.
func AppendNamespace(prefix, suffix string) string {
	switch {
	case prefix == "":
		return suffix
	case suffix == "":
		return prefix
	default:
		return prefix + "_" + suffix
	}
}
