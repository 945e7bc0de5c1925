// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/osdic/lldlink/internal/lld"
	"github.com/osdic/lldlink/internal/sys"
)

const localConfigFile = ".lldlink-args"

// Exit codes of the command.
const (
	exitSuccess = 0
	exitLink    = 1
	exitUsage   = 2
)

// IO provides input and output streams for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func parseFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func run(flags *flags, cfg IO) error {
	slog.Debug("Invoking linker driver",
		slog.String("flavor", flags.Flavor.String()),
		slog.Any("args", flags.LinkerArgs))

	result := lld.Invoke(flags.Flavor, flags.LinkerArgs)

	// The driver's diagnostics are passed on as they are, error
	// stream first.
	if result.HasMessages() {
		fmt.Fprint(cfg.Stderr, result.Messages)

		if !strings.HasSuffix(result.Messages, "\n") {
			fmt.Fprintln(cfg.Stderr)
		}
	}

	if !result.Success {
		return &lld.LinkError{Flavor: flags.Flavor}
	}

	if flags.Validate {
		arch, err := sys.ReadELFArch(flags.Output)
		if err != nil {
			return fmt.Errorf("validate output: %w", err)
		}

		slog.Debug("Output file validated",
			slog.String("path", flags.Output),
			slog.String("arch", arch.String()))
	}

	return nil
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help is requested. So exit
	// without error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return exitSuccess
	}

	// ParseArgs already prints errors, so we just exit.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return exitUsage
}

func handleRunError(err error) int {
	// A failed link already streamed its diagnostics to stderr, so do
	// not print it again.
	if !errors.Is(err, &lld.LinkError{}) {
		slog.Error(err.Error())
	}

	return exitLink
}

// Run is the main entry point for the CLI command.
func Run(args []string, cfg IO) int {
	flags, err := parseFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return exitUsage
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return exitSuccess
	}

	err = run(flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return exitSuccess
}
