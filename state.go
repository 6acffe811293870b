// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tunnel

// State is the lifecycle position of a VM instance.
type State uint8

const (
	// Unknown is the state of a VM that has not been initialized.
	Unknown State = iota

	// Bootstrapping VMs serve reads but reject commands.
	Bootstrapping

	// NormalOp VMs accept commands.
	NormalOp
)

func (s State) String() string {
	switch s {
	case Bootstrapping:
		return "Bootstrapping"
	case NormalOp:
		return "NormalOp"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a state a VM can be moved into.
func (s State) Valid() bool {
	return s == Bootstrapping || s == NormalOp
}
