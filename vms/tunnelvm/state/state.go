// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state persists the bridge configuration, executor epochs and
// proposal records in a keyed store.
package state

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/ids"

	"github.com/luxfi/tunnel/vms/tunnelvm/executors"
	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
)

var (
	_ State = (*state)(nil)

	ErrNotInitialized   = errors.New("bridge not initialized")
	ErrEpochNotFound    = errors.New("executors epoch not found")
	ErrProposalNotFound = errors.New("proposal not found")

	basicStorageKey    = []byte("basic-storage")
	contractSignerKey  = []byte("contract-signer")
	executorsPrefix    = []byte("executors")
	singletonKey       = []byte{0}
	errUnknownFamily   = errors.New("unknown proposal family")
	errNilBasicConfig  = errors.New("nil basic config")
	errEmptyProposal   = errors.New("empty proposals are not stored")
	errEpochCacheEntry = errors.New("unexpected epoch cache entry")
)

// State is the keyed store the bridge reads and writes.
type State interface {
	GetBasicConfig() (*BasicConfig, error)
	PutBasicConfig(*BasicConfig) error

	GetContractSigner() (ids.ID, error)
	PutContractSigner(ids.ID) error

	GetEpoch(index uint64) (*executors.Epoch, error)
	PutEpoch(*executors.Epoch) error

	// GetProposal returns a record with status Empty if none is stored.
	GetProposal(Family, reqid.ID) (Proposal, error)
	PutProposal(Family, reqid.ID, Proposal) error
	// DeleteProposal closes a record.
	DeleteProposal(Family, reqid.ID) error

	// ModifiedEpochs lists the epoch indices written through this State.
	ModifiedEpochs() []uint64
}

type state struct {
	basicDB     database.Database
	signerDB    database.Database
	executorsDB database.Database
	proposalDBs map[Family]database.Database

	// epochCache holds decoded epochs and may be shared across States built
	// over the same committed database. Nil disables caching.
	epochCache     *lru.Cache
	modifiedEpochs []uint64
}

// New returns a State backed by db. epochCache may be nil.
func New(db database.Database, epochCache *lru.Cache) State {
	s := &state{
		basicDB:     prefixdb.New(basicStorageKey, db),
		signerDB:    prefixdb.New(contractSignerKey, db),
		executorsDB: prefixdb.New(executorsPrefix, db),
		proposalDBs: make(map[Family]database.Database, 4),
		epochCache:  epochCache,
	}
	for _, family := range []Family{Lock, Unlock, Mint, Burn} {
		s.proposalDBs[family] = prefixdb.New(family.prefix(), db)
	}
	return s
}

func (s *state) GetBasicConfig() (*BasicConfig, error) {
	bytes, err := s.basicDB.Get(singletonKey)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read basic config: %w", err)
	}

	var disk basicConfigDisk
	if _, err := Codec.Unmarshal(bytes, &disk); err != nil {
		return nil, fmt.Errorf("failed to parse basic config: %w", err)
	}
	return disk.fromDisk(), nil
}

func (s *state) PutBasicConfig(config *BasicConfig) error {
	if config == nil {
		return errNilBasicConfig
	}
	bytes, err := Codec.Marshal(CodecVersion, config.toDisk())
	if err != nil {
		return fmt.Errorf("failed to serialize basic config: %w", err)
	}
	return s.basicDB.Put(singletonKey, bytes)
}

func (s *state) GetContractSigner() (ids.ID, error) {
	signer, err := database.GetID(s.signerDB, singletonKey)
	if errors.Is(err, database.ErrNotFound) {
		return ids.Empty, ErrNotInitialized
	}
	if err != nil {
		return ids.Empty, fmt.Errorf("failed to read contract signer: %w", err)
	}
	return signer, nil
}

func (s *state) PutContractSigner(signer ids.ID) error {
	return database.PutID(s.signerDB, singletonKey, signer)
}

func (s *state) GetEpoch(index uint64) (*executors.Epoch, error) {
	if s.epochCache != nil {
		if cached, ok := s.epochCache.Get(index); ok {
			epoch, ok := cached.(*executors.Epoch)
			if !ok {
				return nil, errEpochCacheEntry
			}
			return copyEpoch(epoch), nil
		}
	}

	bytes, err := s.executorsDB.Get(epochKey(index))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: index %d", ErrEpochNotFound, index)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read executors %d: %w", index, err)
	}

	epoch := &executors.Epoch{}
	if _, err := Codec.Unmarshal(bytes, epoch); err != nil {
		return nil, fmt.Errorf("failed to parse executors %d: %w", index, err)
	}
	if s.epochCache != nil {
		s.epochCache.Add(index, copyEpoch(epoch))
	}
	return epoch, nil
}

func (s *state) PutEpoch(epoch *executors.Epoch) error {
	bytes, err := Codec.Marshal(CodecVersion, epoch)
	if err != nil {
		return fmt.Errorf("failed to serialize executors %d: %w", epoch.Index, err)
	}
	if s.epochCache != nil {
		s.epochCache.Remove(epoch.Index)
	}
	s.modifiedEpochs = append(s.modifiedEpochs, epoch.Index)
	return s.executorsDB.Put(epochKey(epoch.Index), bytes)
}

func (s *state) ModifiedEpochs() []uint64 {
	return s.modifiedEpochs
}

func (s *state) GetProposal(family Family, id reqid.ID) (Proposal, error) {
	db, ok := s.proposalDBs[family]
	if !ok {
		return Proposal{}, errUnknownFamily
	}
	bytes, err := db.Get(id[:])
	if errors.Is(err, database.ErrNotFound) {
		return Proposal{Status: Empty}, nil
	}
	if err != nil {
		return Proposal{}, fmt.Errorf("failed to read %s proposal %s: %w", family, id, err)
	}

	var p Proposal
	if _, err := Codec.Unmarshal(bytes, &p); err != nil {
		return Proposal{}, fmt.Errorf("failed to parse %s proposal %s: %w", family, id, err)
	}
	return p, nil
}

func (s *state) PutProposal(family Family, id reqid.ID, p Proposal) error {
	db, ok := s.proposalDBs[family]
	if !ok {
		return errUnknownFamily
	}
	if p.Status == Empty {
		return errEmptyProposal
	}
	bytes, err := Codec.Marshal(CodecVersion, &p)
	if err != nil {
		return fmt.Errorf("failed to serialize %s proposal %s: %w", family, id, err)
	}
	return db.Put(id[:], bytes)
}

func (s *state) DeleteProposal(family Family, id reqid.ID) error {
	db, ok := s.proposalDBs[family]
	if !ok {
		return errUnknownFamily
	}
	has, err := db.Has(id[:])
	if err != nil {
		return err
	}
	if !has {
		return ErrProposalNotFound
	}
	return db.Delete(id[:])
}

func epochKey(index uint64) []byte {
	return database.PackUInt64(index)
}

func copyEpoch(epoch *executors.Epoch) *executors.Epoch {
	c := *epoch
	c.Members = append(c.Members[:0:0], epoch.Members...)
	return &c
}
