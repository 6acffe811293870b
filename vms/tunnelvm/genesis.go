// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnelvm

import (
	stdjson "encoding/json"
	"fmt"

	"github.com/luxfi/database"
	"github.com/luxfi/database/versiondb"

	"github.com/luxfi/tunnel/utils/json"
	"github.com/luxfi/tunnel/vms/tunnelvm/api"
	"github.com/luxfi/tunnel/vms/tunnelvm/token"
)

var genesisKey = []byte("genesis")

// Allocation credits Amount of Token to Owner. Identities use the base58
// form of the API.
type Allocation struct {
	Token  string      `json:"token"`
	Owner  string      `json:"owner"`
	Amount json.Uint64 `json:"amount"`
}

// Genesis seeds the token ledger of a new chain.
type Genesis struct {
	Allocations []Allocation `json:"allocations"`
}

func ParseGenesis(b []byte) (*Genesis, error) {
	g := &Genesis{}
	if len(b) == 0 {
		return g, nil
	}
	if err := stdjson.Unmarshal(b, g); err != nil {
		return nil, fmt.Errorf("couldn't parse genesis: %w", err)
	}
	return g, nil
}

// apply mints the allocations once. Later calls on the same database are
// no-ops.
func (g *Genesis) apply(db database.Database) error {
	done, err := db.Has(genesisKey)
	if err != nil || done {
		return err
	}

	layer := versiondb.New(db)
	defer layer.Abort()

	ledger := token.NewLedger(layer)
	for i, a := range g.Allocations {
		tokenID, err := api.ParseIdentity(a.Token)
		if err != nil {
			return fmt.Errorf("allocation %d: %w", i, err)
		}
		owner, err := api.ParseIdentity(a.Owner)
		if err != nil {
			return fmt.Errorf("allocation %d: %w", i, err)
		}
		if err := ledger.Mint(tokenID, owner, uint64(a.Amount)); err != nil {
			return fmt.Errorf("allocation %d: %w", i, err)
		}
	}
	if err := layer.Put(genesisKey, nil); err != nil {
		return err
	}
	return layer.Commit()
}
