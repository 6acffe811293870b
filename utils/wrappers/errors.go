// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wrappers provides fixed-width packing and error accumulation.
package wrappers

const (
	// ByteLen is the number of bytes per byte
	ByteLen = 1
	// Uint40Len is the number of bytes per 40-bit timestamp
	Uint40Len = 5
	// LongLen is the number of bytes per long
	LongLen = 8
)

// Errs collects errors during a series of operations.
type Errs struct {
	Err error
}

// Errored returns true if an error has been recorded.
func (errs *Errs) Errored() bool {
	return errs.Err != nil
}

// Add records the first non-nil error.
func (errs *Errs) Add(errors ...error) {
	if errs.Err == nil {
		for _, err := range errors {
			if err != nil {
				errs.Err = err
				break
			}
		}
	}
}
