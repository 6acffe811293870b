// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"crypto/ecdsa"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/database"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/tunnel/utils/timer/mockable"
	"github.com/luxfi/tunnel/utils/units"
	"github.com/luxfi/tunnel/vms/tunnelvm/config"
	"github.com/luxfi/tunnel/vms/tunnelvm/multisig"
	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
	"github.com/luxfi/tunnel/vms/tunnelvm/state"
	"github.com/luxfi/tunnel/vms/tunnelvm/token"
	"github.com/luxfi/tunnel/vms/tunnelvm/txs"
)

const (
	testNow       uint64 = 1_700_000_000
	testOtherSide uint8  = 0x01
	testThreshold uint64 = 2
	testDecimals  uint8  = 9
	testTokenIdx  uint8  = 1

	// 10 whole tokens at 9 decimals.
	testInitialBalance uint64 = 10_000_000_000
	// 1 whole token at canonical precision.
	testRawAmount        = units.Token
	testAmount    uint64 = 1_000_000_000
)

var (
	testSignersLock sync.Mutex
	testSigners     = make(map[ids.ID]*ecdsa.PrivateKey)
)

// newSigner returns the identity of a fresh key that apply can sign for.
func newSigner(t *testing.T) ids.ID {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	id := txs.KeyIdentity(key)

	testSignersLock.Lock()
	defer testSignersLock.Unlock()
	testSigners[id] = key
	return id
}

func signerKey(id ids.ID) (*ecdsa.PrivateKey, bool) {
	testSignersLock.Lock()
	defer testSignersLock.Unlock()
	key, ok := testSigners[id]
	return key, ok
}

type testEnv struct {
	backend *Backend
	db      database.Database

	admin    ids.ID
	proposer ids.ID
	user     ids.ID
	token    ids.ID
	vault    ids.ID

	keys    []*ecdsa.PrivateKey
	members []common.Address
}

// newTestEnv returns an initialized chain with three executors, one
// proposer and one 9-decimal token. The user holds testInitialBalance.
func newTestEnv(t *testing.T, isMint bool) *testEnv {
	require := require.New(t)

	cfg := config.DefaultConfig()
	clk := &mockable.Clock{}
	clk.SetUnix(testNow)

	env := &testEnv{
		backend: &Backend{
			Config:  &cfg,
			ChainID: ids.GenerateTestID(),
			Clk:     clk,
			Log:     log.NewNoOpLogger(),
		},
		db:       memdb.New(),
		admin:    newSigner(t),
		proposer: newSigner(t),
		user:     newSigner(t),
		token:    ids.GenerateTestID(),
	}
	env.vault = ContractSigner(env.backend.ChainID)
	env.keys, env.members = newTestExecutors(t, 3)

	require.NoError(env.apply(&txs.InitializeTx{
		Signer:    env.admin,
		IsMint:    isMint,
		Executors: env.members,
		Threshold: testThreshold,
	}))
	require.NoError(env.apply(&txs.AddProposerTx{
		Signer:   env.admin,
		Proposer: env.proposer,
	}))
	require.NoError(env.apply(&txs.AddTokenTx{
		Signer:     env.admin,
		TokenIndex: testTokenIdx,
		Token:      env.token,
		Decimals:   testDecimals,
	}))
	require.NoError(token.NewLedger(env.db).Mint(env.token, env.user, testInitialBalance))
	return env
}

func newTestExecutors(t *testing.T, n int) ([]*ecdsa.PrivateKey, []common.Address) {
	keys := make([]*ecdsa.PrivateKey, n)
	members := make([]common.Address, n)
	for i := range keys {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		keys[i] = key
		members[i] = crypto.PubkeyToAddress(key.PublicKey)
	}
	return keys, members
}

// apply signs unsigned with its signer's key and executes it atomically,
// the same way the VM does. Signers without a key get a credential from an
// unrelated key.
func (e *testEnv) apply(unsigned txs.Unsigned) error {
	key, ok := signerKey(unsigned.SignedBy())
	if !ok {
		var err error
		key, err = crypto.GenerateKey()
		if err != nil {
			return err
		}
	}
	return e.applyWithKey(unsigned, key)
}

// applyWithKey executes unsigned signed by key, whoever it claims as signer.
func (e *testEnv) applyWithKey(unsigned txs.Unsigned, key *ecdsa.PrivateKey) error {
	tx, err := txs.NewSigned(unsigned, key)
	if err != nil {
		return err
	}
	return e.applyTx(tx)
}

func (e *testEnv) applyTx(tx *txs.Tx) error {
	vdb := versiondb.New(e.db)
	executor := &Executor{
		Backend: e.backend,
		State:   state.New(vdb, nil),
		Mover:   token.NewLedger(vdb),
		Tx:      tx,
	}
	if err := executor.Apply(); err != nil {
		vdb.Abort()
		return err
	}
	return vdb.Commit()
}

func (e *testEnv) setTime(unix uint64) {
	e.backend.Clk.SetUnix(unix)
}

func (e *testEnv) state() state.State {
	return state.New(e.db, nil)
}

func (e *testEnv) balance(t *testing.T, owner ids.ID) uint64 {
	balance, err := token.NewLedger(e.db).Balance(e.token, owner)
	require.NoError(t, err)
	return balance
}

func (e *testEnv) tokenEntry(t *testing.T) state.TokenEntry {
	cfg, err := e.state().GetBasicConfig()
	require.NoError(t, err)
	entry, err := cfg.Token(testTokenIdx)
	require.NoError(t, err)
	return entry
}

func (e *testEnv) proposal(t *testing.T, family state.Family, id reqid.ID) state.Proposal {
	p, err := e.state().GetProposal(family, id)
	require.NoError(t, err)
	return p
}

// reqID builds a request created at createdTime. Lock-mode chains send from
// the hub, mint-mode chains receive on it.
func (e *testEnv) reqID(t *testing.T, kind reqid.Kind, fromHub bool, createdTime, raw uint64) reqid.ID {
	fields := reqid.Fields{
		CreatedTime: createdTime,
		Action:      byte(kind),
		TokenIndex:  testTokenIdx,
		RawAmount:   raw,
		FromChain:   testOtherSide,
		ToChain:     e.backend.Config.HubID,
	}
	if fromHub {
		fields.FromChain, fields.ToChain = fields.ToChain, fields.FromChain
	}
	id, err := fields.Encode()
	require.NoError(t, err)
	return id
}

// sign returns the signatures of the first n executors over msg.
func (e *testEnv) sign(t *testing.T, msg []byte, n int) ([]multisig.Signature, []common.Address) {
	return signWith(t, msg, e.keys[:n])
}

func signWith(t *testing.T, msg []byte, keys []*ecdsa.PrivateKey) ([]multisig.Signature, []common.Address) {
	sigs := make([]multisig.Signature, len(keys))
	signers := make([]common.Address, len(keys))
	for i, key := range keys {
		sig, err := multisig.Sign(msg, key)
		require.NoError(t, err)
		sigs[i] = sig
		signers[i] = crypto.PubkeyToAddress(key.PublicKey)
	}
	return sigs, signers
}

// execution returns a quorum-signed execution of id by epoch 0.
func (e *testEnv) execution(t *testing.T, id reqid.ID) txs.Execution {
	sigs, signers := e.sign(t, id.SigningMessage(e.backend.Config.Channel), int(testThreshold))
	return txs.Execution{
		Signer:     newSigner(t),
		ReqID:      id,
		Signatures: sigs,
		Executors:  signers,
	}
}

func (e *testEnv) cancellation(id reqid.ID) txs.Cancellation {
	return txs.Cancellation{
		Signer:   e.user,
		ReqID:    id,
		RefundTo: e.proposer,
	}
}

func seconds(d time.Duration) uint64 {
	return config.Seconds(d)
}
