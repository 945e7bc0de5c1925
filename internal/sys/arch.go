// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package sys

// Arch is the machine architecture a linked artifact targets.
type Arch string

// Architectures recognized in linked output files.
const (
	AMD64   Arch = "amd64"
	ARM64   Arch = "arm64"
	RISCV64 Arch = "riscv64"
)

// String implements [fmt.Stringer].
func (a Arch) String() string {
	return string(a)
}
