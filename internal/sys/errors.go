// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package sys

import "errors"

var (
	// ErrNotELFFile is returned if the file does not have an ELF magic
	// number.
	ErrNotELFFile = errors.New("is not an ELF file")

	// ErrMachineNotSupported is returned for ELF machine types this
	// package does not recognize.
	ErrMachineNotSupported = errors.New("machine not supported")
)
