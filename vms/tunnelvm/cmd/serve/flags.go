// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/luxfi/ids"

	"github.com/luxfi/tunnel/vms/tunnelvm/config"
)

const (
	HTTPHostKey        = "http-host"
	HTTPPortKey        = "http-port"
	AllowedOriginsKey  = "http-allowed-origins"
	ShutdownTimeoutKey = "http-shutdown-timeout"
	ConfigFileKey      = "config-file"
	GenesisFileKey     = "genesis-file"
	ChainIDKey         = "chain-id"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(HTTPHostKey, "127.0.0.1", "Address of the HTTP server")
	flags.Uint16(HTTPPortKey, 9650, "Port of the HTTP server")
	flags.StringSlice(AllowedOriginsKey, []string{"*"}, "Origins allowed to call the API")
	flags.Duration(ShutdownTimeoutKey, 10*time.Second, "Maximum time to wait for in-flight requests on shutdown")
	flags.String(ConfigFileKey, "", "Deployment config, YAML or JSON. Defaults apply when empty")
	flags.String(GenesisFileKey, "", "JSON genesis seeding token balances")
	flags.String(ChainIDKey, "", "ID of the chain. Used to derive the custody identity")
}

type Config struct {
	Address         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	Chain           config.Config
	GenesisBytes    []byte
	ChainID         ids.ID
}

func ParseFlags(flags *pflag.FlagSet) (*Config, error) {
	host, err := flags.GetString(HTTPHostKey)
	if err != nil {
		return nil, err
	}
	port, err := flags.GetUint16(HTTPPortKey)
	if err != nil {
		return nil, err
	}
	origins, err := flags.GetStringSlice(AllowedOriginsKey)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := flags.GetDuration(ShutdownTimeoutKey)
	if err != nil {
		return nil, err
	}

	chainConfig := config.DefaultConfig()
	configFile, err := flags.GetString(ConfigFileKey)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		chainConfig, err = config.ReadFile(configFile)
		if err != nil {
			return nil, err
		}
	}

	var genesisBytes []byte
	genesisFile, err := flags.GetString(GenesisFileKey)
	if err != nil {
		return nil, err
	}
	if genesisFile != "" {
		genesisBytes, err = os.ReadFile(genesisFile)
		if err != nil {
			return nil, err
		}
	}

	chainID := ids.Empty
	chainIDStr, err := flags.GetString(ChainIDKey)
	if err != nil {
		return nil, err
	}
	if chainIDStr != "" {
		chainID, err = ids.FromString(chainIDStr)
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		Address:         net.JoinHostPort(host, strconv.Itoa(int(port))),
		AllowedOrigins:  origins,
		ShutdownTimeout: shutdownTimeout,
		Chain:           chainConfig,
		GenesisBytes:    genesisBytes,
		ChainID:         chainID,
	}, nil
}
