// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

// Package sys inspects linked output files.
package sys

import (
	"debug/elf"
	"errors"
	"fmt"
)

// ReadELFArch returns the architecture of the ELF file with the given
// path. It is used as a post-link sanity check on freshly produced
// artifacts.
func ReadELFArch(path string) (Arch, error) {
	file, err := elf.Open(path)
	if err != nil {
		var formatErr *elf.FormatError
		if errors.As(err, &formatErr) {
			return "", fmt.Errorf("%w: %v", ErrNotELFFile, err)
		}

		return "", err
	}
	defer file.Close()

	switch file.Machine {
	case elf.EM_X86_64:
		return AMD64, nil
	case elf.EM_AARCH64:
		return ARM64, nil
	case elf.EM_RISCV:
		return RISCV64, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrMachineNotSupported, file.Machine)
	}
}
