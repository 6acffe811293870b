// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnelvm

import (
	"github.com/luxfi/log"

	"github.com/luxfi/tunnel"
	"github.com/luxfi/tunnel/vms/tunnelvm/config"
)

var _ tunnel.Factory = (*Factory)(nil)

// Factory creates tunnel VMs that share one deployment config.
type Factory struct {
	config.Config
}

func (f *Factory) New(logger log.Logger) (tunnel.VM, error) {
	if err := f.Config.Validate(); err != nil {
		return nil, err
	}
	return &VM{
		Config: f.Config,
		log:    logger,
	}, nil
}

// NewDefaultFactory returns a factory for the default deployment config.
func NewDefaultFactory() *Factory {
	return &Factory{Config: config.DefaultConfig()}
}
