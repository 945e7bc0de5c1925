// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
)

// ErrReadBuildInfo is returned if the binary's build info is not
// available.
var ErrReadBuildInfo = errors.New("build info not available")

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
