// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/osdic/lldlink/internal/lld"
)

const (
	name = "lldlink"

	usageMessage = `Usage of 'lldlink':
    lldlink [flags...] -- linker-args...

Link ELF objects:
	lldlink -flavor elf -- -o prog crt0.o prog.o -lc

Select the driver from an LLVM target triple:
	lldlink -target x86_64-unknown-linux-gnu -output prog -- prog.o

All lldlink flags can also be provided via environment variable LLDLINK_ARGS:
	LLDLINK_ARGS="-flavor wasm" lldlink -- -o prog.wasm prog.o

All lldlink flags can also be provided via file ./.lldlink-args, with one
argument per line.
`
)

type flags struct {
	flagSet *flag.FlagSet

	Flavor     lld.Flavor
	Target     string
	Output     string
	Validate   bool
	Version    bool
	Debug      bool
	LinkerArgs []string
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		Flavor: lld.FlavorElf,
	}

	flags.initFlagset(output)

	return flags
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.TextVar(
		&f.Flavor,
		"flavor",
		f.Flavor,
		"linker flavor to use: elf, wasm, macho, coff",
	)

	flagSet.StringVar(
		&f.Target,
		"target",
		f.Target,
		"LLVM target triple to derive the flavor from; overrides -flavor",
	)

	flagSet.StringVar(
		&f.Output,
		"output",
		f.Output,
		"output file; appended to the linker arguments as '-o <path>'",
	)

	flagSet.BoolVar(
		&f.Validate,
		"validate",
		f.Validate,
		"inspect the produced ELF file after a successful link. "+
			"Requires -output.",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a
	// "-" or is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.Target != "" {
		flavor, err := lld.FlavorForTarget(f.Target)
		if err != nil {
			return f.fail("target", err)
		}

		f.Flavor = flavor
	}

	if f.Validate && f.Output == "" {
		return f.fail("-validate requires -output", nil)
	}

	// All positional arguments are passed to the linker driver
	// unmodified.
	f.LinkerArgs = f.flagSet.Args()
	if f.Output != "" {
		f.LinkerArgs = append(f.LinkerArgs, "-o", f.Output)
	}

	if len(f.LinkerArgs) == 0 {
		return f.fail("no linker arguments given", nil)
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
