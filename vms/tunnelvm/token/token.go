// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token moves bridged token balances between owners.
package token

import (
	"errors"
	"fmt"

	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/ids"

	safemath "github.com/luxfi/tunnel/utils/math"
)

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/mover.go -mock_names=Mover=Mover . Mover

var (
	_ Mover = (*Ledger)(nil)

	ErrInsufficientBalance = errors.New("insufficient balance")

	balancesPrefix = []byte("balances")
)

// Mover is the token capability the bridge drives. Every call either fully
// applies or returns an error with no effect.
type Mover interface {
	Transfer(token, from, to ids.ID, amount uint64) error
	Mint(token, to ids.ID, amount uint64) error
	Burn(token, from ids.ID, amount uint64) error
}

// Ledger is a Mover that keeps balances in a database, keyed by token and
// owner.
type Ledger struct {
	db database.Database
}

func NewLedger(db database.Database) *Ledger {
	return &Ledger{
		db: prefixdb.New(balancesPrefix, db),
	}
}

// Balance returns the amount of token held by owner.
func (l *Ledger) Balance(token, owner ids.ID) (uint64, error) {
	balance, err := database.GetUInt64(l.db, balanceKey(token, owner))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	return balance, err
}

func (l *Ledger) Transfer(token, from, to ids.ID, amount uint64) error {
	fromBalance, err := l.Balance(token, from)
	if err != nil {
		return err
	}
	newFrom, err := safemath.Sub(fromBalance, amount)
	if err != nil {
		return fmt.Errorf("%w: %s holds %d of %s, needs %d", ErrInsufficientBalance, from, fromBalance, token, amount)
	}
	if from == to {
		return nil
	}
	toBalance, err := l.Balance(token, to)
	if err != nil {
		return err
	}
	newTo, err := safemath.Add(toBalance, amount)
	if err != nil {
		return err
	}
	if err := l.put(token, from, newFrom); err != nil {
		return err
	}
	return l.put(token, to, newTo)
}

func (l *Ledger) Mint(token, to ids.ID, amount uint64) error {
	balance, err := l.Balance(token, to)
	if err != nil {
		return err
	}
	newBalance, err := safemath.Add(balance, amount)
	if err != nil {
		return err
	}
	return l.put(token, to, newBalance)
}

func (l *Ledger) Burn(token, from ids.ID, amount uint64) error {
	balance, err := l.Balance(token, from)
	if err != nil {
		return err
	}
	newBalance, err := safemath.Sub(balance, amount)
	if err != nil {
		return fmt.Errorf("%w: %s holds %d of %s, needs %d", ErrInsufficientBalance, from, balance, token, amount)
	}
	return l.put(token, from, newBalance)
}

func (l *Ledger) put(token, owner ids.ID, balance uint64) error {
	key := balanceKey(token, owner)
	if balance == 0 {
		return l.db.Delete(key)
	}
	return database.PutUInt64(l.db, key, balance)
}

func balanceKey(token, owner ids.ID) []byte {
	key := make([]byte, 0, ids.IDLen*2)
	key = append(key, token[:]...)
	return append(key, owner[:]...)
}
