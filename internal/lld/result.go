// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package lld

// Result is the outcome of a single link invocation, mirroring the
// record of the C boundary. The diagnostics are copied into a Go
// string before the native buffers are released, so a Result needs no
// cleanup and stays valid indefinitely.
type Result struct {
	// Success reports whether the driver completed the link.
	Success bool

	// Messages holds the combined diagnostic output of the run,
	// error stream before output stream. Empty if the driver stayed
	// silent.
	Messages string
}

// HasMessages reports whether the run produced any diagnostics.
func (r Result) HasMessages() bool {
	return r.Messages != ""
}
