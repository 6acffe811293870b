// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rotation

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/tunnel/vms/tunnelvm/config"
	"github.com/luxfi/tunnel/vms/tunnelvm/executors"
)

const (
	ChannelKey      = "channel"
	MembersKey      = "members"
	ThresholdKey    = "threshold"
	ActiveSinceKey  = "active-since"
	CurrentIndexKey = "current-index"
	HexKey          = "hex"
)

var (
	errNoMembers      = errors.New("at least one member is required")
	errInvalidAddress = errors.New("invalid executor address")
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(ChannelKey, config.DefaultConfig().Channel, "Bridge channel named in the message")
	flags.StringSlice(MembersKey, nil, "Comma separated 0x addresses of the new executors, in order (required)")
	flags.Uint64(ThresholdKey, 1, "Signatures the new executors require")
	flags.Uint64(ActiveSinceKey, 0, "Unix second after which the new executors sign (required)")
	flags.Uint64(CurrentIndexKey, 0, "Index of the executors signing the update")
	flags.Bool(HexKey, false, "Print the message as 0x-prefixed hex")
}

type Config struct {
	Channel      string
	Rotation     executors.Rotation
	CurrentIndex uint64
	Hex          bool
}

func ParseFlags(flags *pflag.FlagSet) (*Config, error) {
	channel, err := flags.GetString(ChannelKey)
	if err != nil {
		return nil, err
	}

	memberStrs, err := flags.GetStringSlice(MembersKey)
	if err != nil {
		return nil, err
	}
	if len(memberStrs) == 0 {
		return nil, errNoMembers
	}
	members := make([]common.Address, len(memberStrs))
	for i, s := range memberStrs {
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("%w: %q", errInvalidAddress, s)
		}
		members[i] = common.HexToAddress(s)
	}

	threshold, err := flags.GetUint64(ThresholdKey)
	if err != nil {
		return nil, err
	}
	activeSince, err := flags.GetUint64(ActiveSinceKey)
	if err != nil {
		return nil, err
	}
	currentIndex, err := flags.GetUint64(CurrentIndexKey)
	if err != nil {
		return nil, err
	}
	asHex, err := flags.GetBool(HexKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Channel: channel,
		Rotation: executors.Rotation{
			Members:     members,
			Threshold:   threshold,
			ActiveSince: activeSince,
		},
		CurrentIndex: currentIndex,
		Hex:          asHex,
	}, nil
}
