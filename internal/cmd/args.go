// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// EnvArgs returns lldlink arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv("LLDLINK_ARGS"))
}

// LocalConfigArgs returns lldlink arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may
// be used and are expanded with [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs merges arguments from the environment and the local
// config file with the given command line arguments. The command line
// arguments come last, so they win over both other sources.
func MergedArgs(
	args []string,
	fsys fs.FS,
	file string,
) ([]string, error) {
	fileArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("local config: %w", err)
	}

	return slices.Concat(EnvArgs(), fileArgs, args), nil
}
