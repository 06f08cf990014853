// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import "errors"

const (
	// DefaultErrorExitCode is used when no exit code could otherwise be
	// determined for a non-nil error.
	DefaultErrorExitCode int = 1

	// ExitConfiguration is the exit code for errors in configuration or
	// while building the fx.App.
	ExitConfiguration int = 2

	// ExitStart is the exit code for errors while starting the fx.App,
	// such as a server that could not bind its address.
	ExitStart int = 3
)

// ExitCoder is an optional interface that an error can implement to supply
// an associated exit code with that error.
type ExitCoder interface {
	// ExitCode returns the exit code associated with this error.
	ExitCode() int
}

type exitCodeErr struct {
	error
	exitCode int
}

func (ece exitCodeErr) ExitCode() int {
	return ece.exitCode
}

func (ece exitCodeErr) Unwrap() error {
	return ece.error
}

// UseExitCode associates an existing error with an exit code.  The returned error
// implements ExitCoder and unwraps to err.
//
// A nil err panics immediately rather than when the returned error is used.
func UseExitCode(err error, exitCode int) error {
	if err == nil {
		panic("cannot associate a nil error with an exit code")
	}

	return exitCodeErr{
		error:    err,
		exitCode: exitCode,
	}
}

// ExitCodeFor determines the process exit code for an error:
//
//   - If err implements ExitCoder, that exit code is returned
//   - If err is not nil, DefaultErrorExitCode is returned
//   - Otherwise, zero (0) is returned
func ExitCodeFor(err error) int {
	var ec ExitCoder
	switch {
	case errors.As(err, &ec):
		return ec.ExitCode()

	case err != nil:
		return DefaultErrorExitCode

	default:
		return 0
	}
}
