// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	utilmetric "github.com/luxfi/tunnel/utils/metric"
	"github.com/luxfi/tunnel/utils/wrappers"
	"github.com/luxfi/tunnel/vms/tunnelvm/txs"
)

const (
	txLabel   = "tx"
	kindLabel = "kind"
)

var _ Metrics = (*metrics)(nil)

type Metrics interface {
	// MarkAccepted records a command that was applied.
	MarkAccepted(tx *txs.Tx) error
	// MarkRejected records a command that failed with an error of the given
	// kind.
	MarkRejected(tx *txs.Tx, kind string) error
	// ObserveApplyTime records how long a command took to apply, whatever
	// its outcome.
	ObserveApplyTime(time.Duration)
}

type metrics struct {
	accepted  *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	applyTime utilmetric.Averager
}

func New(registerer prometheus.Registerer) (Metrics, error) {
	m := &metrics{
		accepted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txs_accepted",
				Help: "number of commands applied",
			},
			[]string{txLabel},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txs_rejected",
				Help: "number of commands rejected, by failure kind",
			},
			[]string{txLabel, kindLabel},
		),
	}

	errs := wrappers.Errs{}
	m.applyTime = utilmetric.NewAveragerWithErrs(
		"tx_apply_time",
		"time (in ns) spent applying commands",
		registerer,
		&errs,
	)
	errs.Add(
		registerer.Register(m.accepted),
		registerer.Register(m.rejected),
	)
	return m, errs.Err
}

func (m *metrics) ObserveApplyTime(d time.Duration) {
	m.applyTime.Observe(float64(d))
}

func (m *metrics) MarkAccepted(tx *txs.Tx) error {
	name, err := TxName(tx)
	if err != nil {
		return err
	}
	m.accepted.With(prometheus.Labels{
		txLabel: name,
	}).Inc()
	return nil
}

func (m *metrics) MarkRejected(tx *txs.Tx, kind string) error {
	name, err := TxName(tx)
	if err != nil {
		return err
	}
	m.rejected.With(prometheus.Labels{
		txLabel:   name,
		kindLabel: kind,
	}).Inc()
	return nil
}

// TxName returns the metric label of tx's command type.
func TxName(tx *txs.Tx) (string, error) {
	n := &namer{}
	if err := tx.Unsigned.Visit(n); err != nil {
		return "", err
	}
	return n.name, nil
}
