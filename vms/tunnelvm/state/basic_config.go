// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"
	"slices"

	"github.com/google/btree"

	"github.com/luxfi/ids"
)

const defaultTreeDegree = 2

var (
	ErrAlreadyProposer         = errors.New("already a proposer")
	ErrNotExistingProposer     = errors.New("not an existing proposer")
	ErrStorageLimitReached     = errors.New("storage limit reached")
	ErrTokenIndexCannotBeZero  = errors.New("token index cannot be zero")
	ErrTokenIndexOccupied      = errors.New("token index occupied")
	ErrTokenIndexNonExistent   = errors.New("token index non existent")
	ErrLockedBalanceMustBeZero = errors.New("locked balance must be zero")
)

// TokenEntry is a registered token.
type TokenEntry struct {
	Index         uint8  `serialize:"true" json:"index"`
	Identity      ids.ID `serialize:"true" json:"identity"`
	Decimals      uint8  `serialize:"true" json:"decimals"`
	Vault         ids.ID `serialize:"true" json:"vault"`
	LockedBalance uint64 `serialize:"true" json:"lockedBalance"`
}

func (t *TokenEntry) Less(than *TokenEntry) bool {
	return t.Index < than.Index
}

// BasicConfig is the deployment-wide configuration record.
type BasicConfig struct {
	Admin                ids.ID
	MintOrLock           bool
	ExecutorsGroupLength uint64
	Proposers            []ids.ID

	tokens *btree.BTreeG[*TokenEntry]
}

type basicConfigDisk struct {
	Admin                ids.ID        `serialize:"true"`
	MintOrLock           bool          `serialize:"true"`
	ExecutorsGroupLength uint64        `serialize:"true"`
	Proposers            []ids.ID      `serialize:"true"`
	Tokens               []*TokenEntry `serialize:"true"`
}

func NewBasicConfig(admin ids.ID, mintOrLock bool) *BasicConfig {
	return &BasicConfig{
		Admin:      admin,
		MintOrLock: mintOrLock,
		tokens:     btree.NewG(defaultTreeDegree, (*TokenEntry).Less),
	}
}

// IsProposer reports whether id is on the proposer allow-list.
func (c *BasicConfig) IsProposer(id ids.ID) bool {
	return slices.Contains(c.Proposers, id)
}

func (c *BasicConfig) AddProposer(id ids.ID, maxProposers int) error {
	switch {
	case c.IsProposer(id):
		return ErrAlreadyProposer
	case len(c.Proposers) >= maxProposers:
		return ErrStorageLimitReached
	}
	c.Proposers = append(c.Proposers, id)
	return nil
}

func (c *BasicConfig) RemoveProposer(id ids.ID) error {
	i := slices.Index(c.Proposers, id)
	if i < 0 {
		return ErrNotExistingProposer
	}
	c.Proposers = slices.Delete(c.Proposers, i, i+1)
	return nil
}

// Token returns a copy of the token at index.
func (c *BasicConfig) Token(index uint8) (TokenEntry, error) {
	token, ok := c.tokens.Get(&TokenEntry{Index: index})
	if !ok {
		return TokenEntry{}, ErrTokenIndexNonExistent
	}
	return *token, nil
}

// AddToken registers a new token with a zero locked balance.
func (c *BasicConfig) AddToken(token TokenEntry, maxTokens int) error {
	switch {
	case token.Index == 0:
		return ErrTokenIndexCannotBeZero
	case c.tokens.Has(&TokenEntry{Index: token.Index}):
		return ErrTokenIndexOccupied
	case c.tokens.Len() >= maxTokens:
		return ErrStorageLimitReached
	}
	token.LockedBalance = 0
	c.tokens.ReplaceOrInsert(&token)
	return nil
}

// UpdateToken overwrites an existing token entry.
func (c *BasicConfig) UpdateToken(token TokenEntry) error {
	if !c.tokens.Has(&token) {
		return ErrTokenIndexNonExistent
	}
	c.tokens.ReplaceOrInsert(&token)
	return nil
}

// RemoveToken drops a token whose locked balance is zero.
func (c *BasicConfig) RemoveToken(index uint8) (TokenEntry, error) {
	token, err := c.Token(index)
	if err != nil {
		return TokenEntry{}, err
	}
	if token.LockedBalance != 0 {
		return TokenEntry{}, ErrLockedBalanceMustBeZero
	}
	c.tokens.Delete(&token)
	return token, nil
}

// Tokens returns copies of all tokens ordered by index.
func (c *BasicConfig) Tokens() []TokenEntry {
	tokens := make([]TokenEntry, 0, c.tokens.Len())
	c.tokens.Ascend(func(token *TokenEntry) bool {
		tokens = append(tokens, *token)
		return true
	})
	return tokens
}

func (c *BasicConfig) toDisk() *basicConfigDisk {
	disk := &basicConfigDisk{
		Admin:                c.Admin,
		MintOrLock:           c.MintOrLock,
		ExecutorsGroupLength: c.ExecutorsGroupLength,
		Proposers:            c.Proposers,
		Tokens:               make([]*TokenEntry, 0, c.tokens.Len()),
	}
	c.tokens.Ascend(func(token *TokenEntry) bool {
		disk.Tokens = append(disk.Tokens, token)
		return true
	})
	return disk
}

func (d *basicConfigDisk) fromDisk() *BasicConfig {
	c := NewBasicConfig(d.Admin, d.MintOrLock)
	c.ExecutorsGroupLength = d.ExecutorsGroupLength
	c.Proposers = d.Proposers
	for _, token := range d.Tokens {
		c.tokens.ReplaceOrInsert(token)
	}
	return c
}
