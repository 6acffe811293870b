// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"errors"

	"github.com/luxfi/tunnel/vms/tunnelvm/executors"
	"github.com/luxfi/tunnel/vms/tunnelvm/multisig"
	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
	"github.com/luxfi/tunnel/vms/tunnelvm/state"
	"github.com/luxfi/tunnel/vms/tunnelvm/token"
	"github.com/luxfi/tunnel/vms/tunnelvm/txs"

	safemath "github.com/luxfi/tunnel/utils/math"
)

var (
	ErrNotLockContract           = errors.New("not a lock contract")
	ErrNotMintContract           = errors.New("not a mint contract")
	ErrNotLockMint               = errors.New("not a lock-mint request")
	ErrNotBurnUnlock             = errors.New("not a burn-unlock or burn-mint request")
	ErrRequireAdminSigner        = errors.New("require admin signer")
	ErrRequireProposerSigner     = errors.New("require proposer signer")
	ErrInvalidReqID              = errors.New("invalid request id")
	ErrInvalidProposer           = errors.New("invalid proposer")
	ErrInvalidRecipient          = errors.New("invalid recipient")
	ErrWaitUntilExpired          = errors.New("wait until expired")
	ErrLockedBalanceInsufficient = errors.New("locked balance insufficient")
)

// Kind groups failures by what the caller got wrong.
type Kind string

const (
	// Malformed requests can never succeed as submitted.
	Malformed Kind = "malformed"
	// Unauthorized requests were issued by the wrong identity.
	Unauthorized Kind = "unauthorized"
	// Quorum failures carry an insufficient or invalid signature bundle.
	Quorum Kind = "quorum"
	// Temporal failures may succeed at another time.
	Temporal Kind = "temporal"
	// Bookkeeping failures would break a balance invariant.
	Bookkeeping Kind = "bookkeeping"
	// Internal failures come from the store or the codec.
	Internal Kind = "internal"
)

var kinds = []struct {
	kind Kind
	errs []error
}{
	{
		kind: Unauthorized,
		errs: []error{
			ErrRequireAdminSigner,
			ErrRequireProposerSigner,
			txs.ErrWrongNumberOfCredentials,
			txs.ErrInvalidCredential,
			txs.ErrCredentialSignerMismatch,
		},
	},
	{
		kind: Temporal,
		errs: []error{
			reqid.ErrCreatedTimeTooEarly,
			reqid.ErrCreatedTimeTooLate,
			ErrWaitUntilExpired,
			executors.ErrExecutorsNotYetActive,
			executors.ErrExecutorsOfNextIndexIsActive,
			executors.ErrActiveSinceShouldAfter36h,
			executors.ErrActiveSinceShouldWithin5d,
		},
	},
	{
		kind: Quorum,
		errs: []error{
			executors.ErrNotMeetThreshold,
			executors.ErrNonExecutors,
			executors.ErrDuplicatedExecutors,
			multisig.ErrArrayLengthNotEqual,
			multisig.ErrSignerCannotBeZeroAddress,
			multisig.ErrInvalidSignature,
		},
	},
	{
		kind: Bookkeeping,
		errs: []error{
			ErrLockedBalanceInsufficient,
			state.ErrLockedBalanceMustBeZero,
			token.ErrInsufficientBalance,
			reqid.ErrArithmeticOverflow,
			safemath.ErrOverflow,
			safemath.ErrUnderflow,
		},
	},
	{
		kind: Malformed,
		errs: []error{
			ErrNotLockContract,
			ErrNotMintContract,
			ErrNotLockMint,
			ErrNotBurnUnlock,
			ErrInvalidReqID,
			ErrInvalidProposer,
			ErrInvalidRecipient,
			reqid.ErrNotMintSide,
			reqid.ErrNotMintOppositeSide,
			reqid.ErrAmountCannotBeZero,
			state.ErrNotInitialized,
			state.ErrProposalNotFound,
			state.ErrAlreadyProposer,
			state.ErrNotExistingProposer,
			state.ErrStorageLimitReached,
			state.ErrTokenIndexCannotBeZero,
			state.ErrTokenIndexOccupied,
			state.ErrTokenIndexNonExistent,
			executors.ErrThresholdMustBeGreaterThanZero,
			executors.ErrStorageLimitReached,
			executors.ErrExecutorsAlreadyInitialized,
			executors.ErrInvalidExecutorsIndex,
			executors.ErrFailedToOverwriteExistingExecutors,
		},
	},
}

// Classify returns the Kind of an error returned by an Executor.
func Classify(err error) Kind {
	for _, k := range kinds {
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return k.kind
			}
		}
	}
	return Internal
}
