// Package main provides the shelf CLI for managing a personal library
// catalog.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs one CLI invocation and returns its exit code. The library
// context is closed, and therefore flushed, whether or not the command
// succeeded.
func execute(args []string, stdout, stderr io.Writer) int {
	app := &application{}
	root := newRootCmd(app)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if closeErr := app.close(); closeErr != nil {
		if err == nil {
			err = closeErr
		} else {
			app.log.Error().Err(closeErr).Msg("closing library")
		}
	}

	if err != nil {
		fmt.Fprintln(stderr, "shelf:", err)
	}
	return exitCode(err)
}

// systemError marks failures of the environment (storage, file system)
// as opposed to bad input.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var sysErr *systemError
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrMalformedRecord), errors.As(err, &sysErr):
		return exitSysError
	default:
		return exitUserError
	}
}
