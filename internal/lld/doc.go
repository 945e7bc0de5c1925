// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

// Package lld invokes LLVM's LLD linker drivers in process.
//
// LLD ships one driver per object file format: ELF, WebAssembly,
// Mach-O and COFF. A [Flavor] selects the driver, [Invoke] runs it
// and returns the driver's success flag together with its combined
// diagnostic output. The drivers are not safe for concurrent use, so
// all calls with the same flavor are serialized. Calls with different
// flavors are independent and may run in parallel.
//
// The native drivers are only available in binaries built with the
// "lld" build tag and cgo. In all other builds every invocation
// fails with [ErrNotLinked].
package lld
