// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utilmetric

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/rpc/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/tunnel/utils/wrappers"
)

const methodLabel = "method"

// APIInterceptor times JSON-RPC calls. Register both hooks on the rpc
// server.
type APIInterceptor interface {
	InterceptRequest(i *rpc.RequestInfo) *http.Request
	AfterRequest(i *rpc.RequestInfo)
}

type contextKey int

const requestTimestampKey contextKey = iota

type apiInterceptor struct {
	requestDurationCount *prometheus.CounterVec
	requestDurationSum   *prometheus.GaugeVec
	requestErrors        *prometheus.CounterVec
}

func NewAPIInterceptor(namespace string, registerer prometheus.Registerer) (APIInterceptor, error) {
	a := &apiInterceptor{
		requestDurationCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "request_duration_count",
				Help:      "Number of times this type of request was made",
			},
			[]string{methodLabel},
		),
		requestDurationSum: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "request_duration_sum",
				Help:      "Amount of time in nanoseconds that has been spent handling this type of request",
			},
			[]string{methodLabel},
		),
		requestErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "request_error_count",
				Help:      "Number of request errors",
			},
			[]string{methodLabel},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(a.requestDurationCount),
		registerer.Register(a.requestDurationSum),
		registerer.Register(a.requestErrors),
	)
	return a, errs.Err
}

func (*apiInterceptor) InterceptRequest(i *rpc.RequestInfo) *http.Request {
	ctx := context.WithValue(i.Request.Context(), requestTimestampKey, time.Now())
	return i.Request.WithContext(ctx)
}

func (a *apiInterceptor) AfterRequest(i *rpc.RequestInfo) {
	timestamp, ok := i.Request.Context().Value(requestTimestampKey).(time.Time)
	if !ok {
		return
	}

	labels := prometheus.Labels{methodLabel: i.Method}
	a.requestDurationCount.With(labels).Inc()
	a.requestDurationSum.With(labels).Add(float64(time.Since(timestamp)))
	if i.Error != nil {
		a.requestErrors.With(labels).Inc()
	}
}
