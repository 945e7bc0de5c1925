// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

//go:build cgo

package main

/*
#include <stdbool.h>
#include <stdlib.h>

// Result record of the C boundary. The caller owns messages and must
// release it with lld_link_free_result exactly once.
typedef struct {
	bool success;
	const char *messages;
} LldInvokeResult;
*/
import "C"

import (
	"unsafe"

	"github.com/osdic/lldlink/internal/lld"
)

// lld_link runs the LLD driver selected by flavor: 0 ELF, 1 wasm,
// 2 Mach-O, 3 COFF. argv holds argc linker arguments; argv[0] is the
// first real argument, not a program name. Unknown flavors yield a
// failed result without messages.
//
//export lld_link
func lld_link(
	flavor C.int,
	argc C.int,
	argv **C.char,
) C.LldInvokeResult {
	args := make([]string, 0, int(argc))
	if argc > 0 {
		for _, arg := range unsafe.Slice(argv, int(argc)) {
			args = append(args, C.GoString(arg))
		}
	}

	result := lld.Invoke(lld.Flavor(flavor), args)

	cResult := C.LldInvokeResult{
		success: C.bool(result.Success),
	}
	if result.HasMessages() {
		cResult.messages = C.CString(result.Messages)
	}

	return cResult
}

// lld_link_free_result releases the messages buffer of a result. A
// result without messages is a no-op. Releasing the same result twice
// is undefined behavior, as with any manual memory management.
//
//export lld_link_free_result
func lld_link_free_result(result *C.LldInvokeResult) {
	if result == nil || result.messages == nil {
		return
	}

	C.free(unsafe.Pointer(result.messages))
}
