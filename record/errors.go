// SPDX-License-Identifier: MIT
// Package record: sentinel errors for the YAML codec.
//
// Decode errors wrap these with the offending line, so callers match them
// with errors.Is.

package record

import "errors"

var (
	// ErrNotMapping is returned when a YAML document is not a mapping.
	ErrNotMapping = errors.New("record: document is not a mapping")

	// ErrDuplicateKey is returned when a YAML mapping repeats a key.
	ErrDuplicateKey = errors.New("record: duplicate key")

	// ErrBadKey is returned when a YAML mapping key is not a scalar.
	ErrBadKey = errors.New("record: key is not a scalar")
)
