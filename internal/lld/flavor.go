// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package lld

import (
	"fmt"
	"strings"
)

// Flavor selects the LLD driver that performs a link.
type Flavor int

// Supported LLD drivers. The values are the flavor tags of the C
// boundary and must not be reordered.
const (
	FlavorElf   Flavor = 0
	FlavorWasm  Flavor = 1
	FlavorMachO Flavor = 2
	FlavorCoff  Flavor = 3

	numFlavors = 4
)

// flavorSpec describes the peculiarities of a single driver. New
// flavors are added here only.
type flavorSpec struct {
	name string
	// Synthetic program name. The ELF and COFF drivers insist on a
	// program name in argv[0], the wasm and Mach-O drivers must not
	// get one. Empty means no program name slot.
	argv0 string
}

var flavorSpecs = [numFlavors]flavorSpec{
	FlavorElf:   {name: "elf", argv0: "lld"},
	FlavorWasm:  {name: "wasm"},
	FlavorMachO: {name: "macho"},
	FlavorCoff:  {name: "coff", argv0: "lld.exe"},
}

func (f Flavor) isKnown() bool {
	return f >= 0 && f < numFlavors
}

// String implements [fmt.Stringer].
func (f Flavor) String() string {
	if !f.isKnown() {
		return ""
	}

	return flavorSpecs[f].name
}

// MarshalText implements [encoding.TextMarshaler].
func (f Flavor) MarshalText() ([]byte, error) {
	if !f.isKnown() {
		return nil, ErrUnknownFlavor
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Flavor) UnmarshalText(text []byte) error {
	for idx := range flavorSpecs {
		if flavorSpecs[idx].name == string(text) {
			*f = Flavor(idx)
			return nil
		}
	}

	return ErrUnknownFlavor
}

// argv builds the complete argument vector for the driver, with the
// synthetic program name prepended where the driver requires one.
func (f Flavor) argv(args []string) []string {
	argv0 := flavorSpecs[f].argv0
	if argv0 == "" {
		return args
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, argv0)

	return append(argv, args...)
}

// FlavorForTarget returns the [Flavor] that links objects for the
// given LLVM target triple, like "x86_64-unknown-linux-gnu" or
// "wasm32-unknown-unknown".
func FlavorForTarget(triple string) (Flavor, error) {
	fields := strings.Split(triple, "-")
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: %s", ErrTargetNotSupported, triple)
	}

	// Wasm targets are identified by their architecture, not their
	// OS component.
	if strings.HasPrefix(fields[0], "wasm") {
		return FlavorWasm, nil
	}

	for _, field := range fields[1:] {
		switch {
		case field == "windows":
			return FlavorCoff, nil
		case field == "darwin", field == "ios",
			strings.HasPrefix(field, "macos"):
			return FlavorMachO, nil
		case field == "linux", field == "none",
			strings.HasSuffix(field, "bsd"):
			return FlavorElf, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrTargetNotSupported, triple)
}
