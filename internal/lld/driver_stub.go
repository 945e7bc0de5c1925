// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

//go:build !lld || !cgo

package lld

// Keeps the pure Go build compiling without the native LLD
// libraries. Every invocation reports [ErrNotLinked]. Tests install
// their own drivers with [SwapDriver].
func init() {
	for idx := range drivers {
		drivers[idx] = func([]string) (DriverOutput, error) {
			return DriverOutput{}, ErrNotLinked
		}
	}
}
