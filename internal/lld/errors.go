// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package lld

import "errors"

var (
	// ErrUnknownFlavor is returned if a flavor is not one of the
	// supported LLD drivers.
	ErrUnknownFlavor = errors.New("unknown linker flavor")

	// ErrNotLinked is returned if the binary was built without the
	// native LLD drivers. Build with cgo and the "lld" tag to get
	// them.
	ErrNotLinked = errors.New("lld drivers not linked into this binary")

	// ErrTargetNotSupported is returned if no driver can be derived
	// from a target triple.
	ErrTargetNotSupported = errors.New("target not supported")
)

// LinkError is returned by [Link] if the driver reports a failed
// link. It carries the combined diagnostic output of the run.
type LinkError struct {
	Flavor   Flavor
	Messages string
}

// Error implements the [error] interface.
func (e *LinkError) Error() string {
	msg := e.Flavor.String() + " link failed"
	if e.Messages != "" {
		msg += ": " + e.Messages
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*LinkError) Is(other error) bool {
	_, ok := other.(*LinkError)
	return ok
}
