// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configfile

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

const (
	OutputKey = "output"
	FormatKey = "format"
	ForceKey  = "force"

	formatYAML = "yaml"
	formatJSON = "json"
)

var errUnknownFormat = errors.New("unknown format")

func AddInitFlags(flags *pflag.FlagSet) {
	flags.String(OutputKey, "tunnel.yaml", "Path to write the config to")
	flags.String(FormatKey, formatYAML, "Config encoding, yaml or json")
	flags.Bool(ForceKey, false, "Overwrite an existing file")
}

type InitConfig struct {
	Output string
	YAML   bool
	Force  bool
}

func ParseInitFlags(flags *pflag.FlagSet) (*InitConfig, error) {
	output, err := flags.GetString(OutputKey)
	if err != nil {
		return nil, err
	}
	format, err := flags.GetString(FormatKey)
	if err != nil {
		return nil, err
	}
	if format != formatYAML && format != formatJSON {
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	force, err := flags.GetBool(ForceKey)
	if err != nil {
		return nil, err
	}
	return &InitConfig{
		Output: output,
		YAML:   format == formatYAML,
		Force:  force,
	}, nil
}
