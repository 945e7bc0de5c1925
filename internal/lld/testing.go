// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package lld

// SwapDriver replaces the driver for the given flavor and returns a
// function that restores the previous one. It is meant for tests that
// need instrumented drivers instead of the native ones. Not safe for
// use while invocations are in flight.
func SwapDriver(flavor Flavor, driver Driver) func() {
	previous := drivers[flavor]
	drivers[flavor] = driver

	return func() {
		drivers[flavor] = previous
	}
}
