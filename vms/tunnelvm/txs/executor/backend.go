// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"github.com/luxfi/geth/crypto"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/tunnel/utils/timer/mockable"
	"github.com/luxfi/tunnel/vms/tunnelvm/config"
	"github.com/luxfi/tunnel/vms/tunnelvm/executors"
)

var contractSignerSeed = []byte("contract-signer")

type Backend struct {
	Config  *config.Config
	ChainID ids.ID
	Clk     *mockable.Clock
	Log     log.Logger
}

func (b *Backend) now() uint64 {
	return b.Clk.Unix()
}

func (b *Backend) rotationWindow() executors.Window {
	return executors.Window{
		MinDelay: config.Seconds(b.Config.MinActiveSinceDelay),
		MaxDelay: config.Seconds(b.Config.MaxActiveSinceDelay),
	}
}

// ContractSigner returns the custody identity of the chain. Tokens added
// without an explicit vault are held by it.
func ContractSigner(chainID ids.ID) ids.ID {
	return ids.ID(crypto.Keccak256Hash(contractSignerSeed, chainID[:]))
}
