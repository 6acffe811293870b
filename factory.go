// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

import (
	"github.com/luxfi/log"
)

// A Factory creates new VM instances
type Factory interface {
	New(log.Logger) (VM, error)
}
