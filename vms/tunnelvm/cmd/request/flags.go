// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package request

import (
	"github.com/spf13/pflag"

	"github.com/luxfi/tunnel/vms/tunnelvm/config"
	"github.com/luxfi/tunnel/vms/tunnelvm/reqid"
)

const (
	ChannelKey     = "channel"
	HexKey         = "hex"
	VersionKey     = "version"
	CreatedTimeKey = "created-time"
	ActionKey      = "action"
	TokenIndexKey  = "token-index"
	AmountKey      = "amount"
	FromChainKey   = "from-chain"
	ToChainKey     = "to-chain"
)

func AddMessageFlags(flags *pflag.FlagSet) {
	flags.String(ChannelKey, config.DefaultConfig().Channel, "Bridge channel named in the message")
	flags.Bool(HexKey, false, "Print the message as 0x-prefixed hex")
}

type MessageConfig struct {
	Channel string
	Hex     bool
}

func ParseMessageFlags(flags *pflag.FlagSet) (*MessageConfig, error) {
	channel, err := flags.GetString(ChannelKey)
	if err != nil {
		return nil, err
	}
	asHex, err := flags.GetBool(HexKey)
	if err != nil {
		return nil, err
	}
	return &MessageConfig{
		Channel: channel,
		Hex:     asHex,
	}, nil
}

func AddEncodeFlags(flags *pflag.FlagSet) {
	flags.Uint8(VersionKey, 0, "Request id version byte")
	flags.Uint64(CreatedTimeKey, 0, "Creation time in unix seconds (required)")
	flags.Uint8(ActionKey, uint8(reqid.LockMint), "Action byte; the low nibble selects lock-mint (1), burn-unlock (2) or burn-mint (3)")
	flags.Uint8(TokenIndexKey, 0, "Token index (required)")
	flags.Uint64(AmountKey, 0, "Amount at 6 decimals (required)")
	flags.Uint8(FromChainKey, 0, "Source chain byte")
	flags.Uint8(ToChainKey, 0, "Destination chain byte")
}

func ParseEncodeFlags(flags *pflag.FlagSet) (reqid.Fields, error) {
	var (
		f   reqid.Fields
		err error
	)
	if f.Version, err = flags.GetUint8(VersionKey); err != nil {
		return f, err
	}
	if f.CreatedTime, err = flags.GetUint64(CreatedTimeKey); err != nil {
		return f, err
	}
	if f.Action, err = flags.GetUint8(ActionKey); err != nil {
		return f, err
	}
	if f.TokenIndex, err = flags.GetUint8(TokenIndexKey); err != nil {
		return f, err
	}
	if f.RawAmount, err = flags.GetUint64(AmountKey); err != nil {
		return f, err
	}
	if f.FromChain, err = flags.GetUint8(FromChainKey); err != nil {
		return f, err
	}
	f.ToChain, err = flags.GetUint8(ToChainKey)
	return f, err
}
