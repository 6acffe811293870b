// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package api exposes a tunnel chain over JSON-RPC.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/rpc/v2"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/tunnel/utils/json"
	utilmetric "github.com/luxfi/tunnel/utils/metric"
	"github.com/luxfi/tunnel/vms/tunnelvm/config"
	"github.com/luxfi/tunnel/vms/tunnelvm/executors"
	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
	"github.com/luxfi/tunnel/vms/tunnelvm/state"
	"github.com/luxfi/tunnel/vms/tunnelvm/txs"
)

const Name = "tunnel"

var errNoSigningMessage = errors.New("request id has no signing message")

// Chain is the part of the VM the service reads from and submits to.
type Chain interface {
	// IssueTx applies tx atomically.
	IssueTx(tx *txs.Tx) error
	// View runs f against the committed state under the chain's lock.
	View(f func(state.State) error) error
	// Balance returns the ledger balance of owner in token.
	Balance(token, owner ids.ID) (uint64, error)
}

// Service is the JSON-RPC API of a tunnel chain.
type Service struct {
	Chain  Chain
	Config *config.Config
	Log    log.Logger
}

// NewHandler returns an http.Handler serving s under the "tunnel" service
// name. interceptor may be nil.
func NewHandler(s *Service, interceptor utilmetric.APIInterceptor) (http.Handler, error) {
	server := rpc.NewServer()
	codec := json.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	if interceptor != nil {
		server.RegisterInterceptFunc(interceptor.InterceptRequest)
		server.RegisterAfterFunc(interceptor.AfterRequest)
	}
	return server, server.RegisterService(s, Name)
}

type IssueTxArgs struct {
	Tx hexutil.Bytes `json:"tx"`
}

type IssueTxReply struct {
	TxID ids.ID `json:"txID"`
}

// IssueTx parses a command and applies it. The chain rejects a command
// unless its credential was produced by the key behind its signer.
func (s *Service) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	tx, err := txs.Parse(args.Tx)
	if err != nil {
		return fmt.Errorf("couldn't parse tx: %w", err)
	}

	s.Log.Debug("API called",
		log.String("service", Name),
		log.String("method", "issueTx"),
		log.Stringer("txID", tx.ID()),
	)

	if err := s.Chain.IssueTx(tx); err != nil {
		return err
	}
	reply.TxID = tx.ID()
	return nil
}

type TokenReply struct {
	Index         uint8       `json:"index"`
	Identity      string      `json:"identity"`
	Decimals      uint8       `json:"decimals"`
	Vault         string      `json:"vault"`
	LockedBalance json.Uint64 `json:"lockedBalance"`
}

func newTokenReply(t state.TokenEntry) TokenReply {
	return TokenReply{
		Index:         t.Index,
		Identity:      FormatIdentity(t.Identity),
		Decimals:      t.Decimals,
		Vault:         FormatIdentity(t.Vault),
		LockedBalance: json.Uint64(t.LockedBalance),
	}
}

type GetConfigReply struct {
	Channel              string       `json:"channel"`
	HubID                uint8        `json:"hubID"`
	Admin                string       `json:"admin"`
	MintOrLock           bool         `json:"mintOrLock"`
	ExecutorsGroupLength json.Uint64  `json:"executorsGroupLength"`
	ContractSigner       string       `json:"contractSigner"`
	Proposers            []string     `json:"proposers"`
	Tokens               []TokenReply `json:"tokens"`
}

// GetConfig returns the deployment's basic configuration.
func (s *Service) GetConfig(_ *http.Request, _ *struct{}, reply *GetConfigReply) error {
	s.Log.Debug("API called",
		log.String("service", Name),
		log.String("method", "getConfig"),
	)

	return s.Chain.View(func(st state.State) error {
		cfg, err := st.GetBasicConfig()
		if err != nil {
			return err
		}
		signer, err := st.GetContractSigner()
		if err != nil {
			return err
		}

		reply.Channel = s.Config.Channel
		reply.HubID = s.Config.HubID
		reply.Admin = FormatIdentity(cfg.Admin)
		reply.MintOrLock = cfg.MintOrLock
		reply.ExecutorsGroupLength = json.Uint64(cfg.ExecutorsGroupLength)
		reply.ContractSigner = FormatIdentity(signer)
		reply.Proposers = formatIdentities(cfg.Proposers)
		tokens := cfg.Tokens()
		reply.Tokens = make([]TokenReply, len(tokens))
		for i, t := range tokens {
			reply.Tokens[i] = newTokenReply(t)
		}
		return nil
	})
}

type GetTokenArgs struct {
	Index uint8 `json:"index"`
}

// GetToken returns one entry of the token registry.
func (s *Service) GetToken(_ *http.Request, args *GetTokenArgs, reply *TokenReply) error {
	s.Log.Debug("API called",
		log.String("service", Name),
		log.String("method", "getToken"),
		log.Int("index", int(args.Index)),
	)

	return s.Chain.View(func(st state.State) error {
		cfg, err := st.GetBasicConfig()
		if err != nil {
			return err
		}
		t, err := cfg.Token(args.Index)
		if err != nil {
			return err
		}
		*reply = newTokenReply(t)
		return nil
	})
}

type IsProposerArgs struct {
	Identity string `json:"identity"`
}

type IsProposerReply struct {
	IsProposer bool `json:"isProposer"`
}

func (s *Service) IsProposer(_ *http.Request, args *IsProposerArgs, reply *IsProposerReply) error {
	id, err := ParseIdentity(args.Identity)
	if err != nil {
		return err
	}
	return s.Chain.View(func(st state.State) error {
		cfg, err := st.GetBasicConfig()
		if err != nil {
			return err
		}
		reply.IsProposer = cfg.IsProposer(id)
		return nil
	})
}

type GetBalanceArgs struct {
	Token string `json:"token"`
	Owner string `json:"owner"`
}

type GetBalanceReply struct {
	Balance json.Uint64 `json:"balance"`
}

func (s *Service) GetBalance(_ *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	token, err := ParseIdentity(args.Token)
	if err != nil {
		return err
	}
	owner, err := ParseIdentity(args.Owner)
	if err != nil {
		return err
	}
	balance, err := s.Chain.Balance(token, owner)
	reply.Balance = json.Uint64(balance)
	return err
}

type GetExecutorsArgs struct {
	Index json.Uint64 `json:"index"`
}

type GetExecutorsReply struct {
	Index         json.Uint64      `json:"index"`
	Threshold     json.Uint64      `json:"threshold"`
	ActiveSince   json.Uint64      `json:"activeSince"`
	InactiveAfter json.Uint64      `json:"inactiveAfter"`
	Members       []common.Address `json:"members"`
}

// GetExecutors returns the executor epoch stored at the given index.
func (s *Service) GetExecutors(_ *http.Request, args *GetExecutorsArgs, reply *GetExecutorsReply) error {
	s.Log.Debug("API called",
		log.String("service", Name),
		log.String("method", "getExecutors"),
		log.Uint64("index", uint64(args.Index)),
	)

	return s.Chain.View(func(st state.State) error {
		epoch, err := st.GetEpoch(uint64(args.Index))
		if err != nil {
			return err
		}
		reply.Index = json.Uint64(epoch.Index)
		reply.Threshold = json.Uint64(epoch.Threshold)
		reply.ActiveSince = json.Uint64(epoch.ActiveSince)
		reply.InactiveAfter = json.Uint64(epoch.InactiveAfter)
		reply.Members = epoch.Members
		return nil
	})
}

type GetProposalArgs struct {
	Family string   `json:"family"`
	ReqID  reqid.ID `json:"reqID"`
}

type GetProposalReply struct {
	Status   string `json:"status"`
	Identity string `json:"identity,omitempty"`
}

// GetProposal returns the record of a request in the given family. Unknown
// requests report status "empty".
func (s *Service) GetProposal(_ *http.Request, args *GetProposalArgs, reply *GetProposalReply) error {
	family, err := state.ParseFamily(args.Family)
	if err != nil {
		return err
	}

	s.Log.Debug("API called",
		log.String("service", Name),
		log.String("method", "getProposal"),
		log.Stringer("family", family),
		log.Stringer("reqID", args.ReqID),
	)

	return s.Chain.View(func(st state.State) error {
		p, err := st.GetProposal(family, args.ReqID)
		if err != nil {
			return err
		}
		reply.Status = p.Status.String()
		if p.Status == state.Proposed {
			reply.Identity = FormatIdentity(p.Identity)
		}
		return nil
	})
}

type ReqIDArgs struct {
	ReqID reqid.ID `json:"reqID"`
}

type DecodeRequestReply struct {
	reqid.Fields
	Kind string `json:"kind"`
}

// DecodeRequest splits a request id into its fields.
func (*Service) DecodeRequest(_ *http.Request, args *ReqIDArgs, reply *DecodeRequestReply) error {
	reply.Fields = args.ReqID.Fields()
	reply.Kind = args.ReqID.Kind().String()
	return nil
}

type MessageReply struct {
	Message hexutil.Bytes `json:"message"`
}

// SigningMessage returns the bytes executors sign to authorize a request.
func (s *Service) SigningMessage(_ *http.Request, args *ReqIDArgs, reply *MessageReply) error {
	msg := args.ReqID.SigningMessage(s.Config.Channel)
	if len(msg) == 0 {
		return fmt.Errorf("%w: %s", errNoSigningMessage, args.ReqID)
	}
	reply.Message = msg
	return nil
}

type RotationMessageArgs struct {
	Members      []common.Address `json:"members"`
	Threshold    json.Uint64      `json:"threshold"`
	ActiveSince  json.Uint64      `json:"activeSince"`
	CurrentIndex json.Uint64      `json:"currentIndex"`
}

// RotationMessage returns the bytes the current executors sign to install a
// new executor set.
func (s *Service) RotationMessage(_ *http.Request, args *RotationMessageArgs, reply *MessageReply) error {
	r := executors.Rotation{
		Members:     args.Members,
		Threshold:   uint64(args.Threshold),
		ActiveSince: uint64(args.ActiveSince),
	}
	reply.Message = r.Message(s.Config.Channel, uint64(args.CurrentIndex))
	return nil
}
