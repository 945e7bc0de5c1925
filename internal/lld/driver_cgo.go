// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

//go:build lld && cgo

package lld

// The glue code is plain C++ compiled by cgo. LLD does not ship a
// stable C API, so linking needs the driver libraries plus LLVM
// itself. The flags below match the output of
// `llvm-config --ldflags --system-libs`; adjust CGO_LDFLAGS for
// non-default LLVM installations.

// #cgo CXXFLAGS: -std=c++17 -fno-rtti -fno-exceptions
// #cgo LDFLAGS: -llldELF -llldWasm -llldMachO -llldCOFF
// #cgo LDFLAGS: -llldCommon -lLLVM
// #cgo LDFLAGS: -lz -lm
//
// #include <stdlib.h>
// #include "lldglue.h"
import "C"

import "unsafe"

func init() {
	for idx := range drivers {
		drivers[idx] = glueDriver(Flavor(idx))
	}
}

// glueDriver returns a [Driver] that hands the argument vector to the
// native glue function for the given flavor.
func glueDriver(flavor Flavor) Driver {
	return func(argv []string) (DriverOutput, error) {
		cArgv := make([]*C.char, len(argv))
		for idx, arg := range argv {
			cArgv[idx] = C.CString(arg)
		}

		defer func() {
			for _, arg := range cArgv {
				C.free(unsafe.Pointer(arg))
			}
		}()

		var cArgvPtr **C.char
		if len(cArgv) > 0 {
			cArgvPtr = &cArgv[0]
		}

		var errText, outText *C.char

		ok := C.lldglue_link(
			C.int(flavor),
			C.int(len(cArgv)),
			cArgvPtr,
			&errText,
			&outText,
		)

		output := DriverOutput{Ok: bool(ok)}

		// The glue allocates the buffers with malloc and hands over
		// ownership. Copy and release right here so nothing above
		// this layer ever sees native memory.
		if errText != nil {
			output.ErrText = C.GoString(errText)
			C.free(unsafe.Pointer(errText))
		}

		if outText != nil {
			output.OutText = C.GoString(outText)
			C.free(unsafe.Pointer(outText))
		}

		return output, nil
	}
}
