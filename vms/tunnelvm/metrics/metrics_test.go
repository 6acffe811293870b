// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"

	"github.com/luxfi/tunnel/vms/tunnelvm/txs"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(err)

	lock, err := txs.NewTx(&txs.ProposeLockTx{Request: txs.Request{Signer: ids.GenerateTestID()}})
	require.NoError(err)
	admin, err := txs.NewTx(&txs.TransferAdminTx{Signer: ids.GenerateTestID()})
	require.NoError(err)

	require.NoError(m.MarkAccepted(lock))
	require.NoError(m.MarkAccepted(lock))
	require.NoError(m.MarkRejected(admin, "unauthorized"))
	m.ObserveApplyTime(3 * time.Millisecond)

	impl := m.(*metrics)
	require.InDelta(2, testutil.ToFloat64(impl.accepted.WithLabelValues("propose_lock")), 0)
	require.InDelta(1, testutil.ToFloat64(impl.rejected.WithLabelValues("transfer_admin", "unauthorized")), 0)
	count, err := testutil.GatherAndCount(registry)
	require.NoError(err)
	// accepted, rejected, and the two apply time series
	require.Equal(4, count)

	// Registering twice on the same registry fails.
	_, err = New(registry)
	require.Error(err) //nolint:forbidigo // prometheus returns an AlreadyRegisteredError value
}

func TestTxName(t *testing.T) {
	tests := []struct {
		unsigned txs.Unsigned
		expected string
	}{
		{unsigned: &txs.InitializeTx{}, expected: "initialize"},
		{unsigned: &txs.UpdateExecutorsTx{}, expected: "update_executors"},
		{unsigned: &txs.ExecuteUnlockTx{}, expected: "execute_unlock"},
		{unsigned: &txs.CancelBurnTx{}, expected: "cancel_burn"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require := require.New(t)

			tx, err := txs.NewTx(tt.unsigned)
			require.NoError(err)
			name, err := TxName(tx)
			require.NoError(err)
			require.Equal(tt.expected, name)
		})
	}
}
