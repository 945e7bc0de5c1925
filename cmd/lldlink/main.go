// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/osdic/lldlink/internal/cmd"
)

func main() {
	cfg := cmd.IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	os.Exit(cmd.Run(os.Args[1:], cfg))
}
