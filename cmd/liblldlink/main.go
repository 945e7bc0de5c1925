// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

// liblldlink exposes the bridge as a flat C ABI for callers written
// in other languages. Build it as a shared library:
//
//	go build -buildmode=c-shared -tags lld -o liblldlink.so ./cmd/liblldlink
//
// The exported functions live in capi.go.
package main

func main() {}
