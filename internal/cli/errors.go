package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
)

const (
	ExitCodeSuccess    = 0
	ExitCodeGeneric    = 1
	ExitCodeUsage      = 2
	ExitCodeNotFound   = 3
	ExitCodeValidation = 4
	ExitCodeDecryption = 5
	ExitCodeIO         = 6
)

// ExitError pairs an error with the process exit code it should produce.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ExitError) ExitCode() int {
	if e == nil {
		return ExitCodeGeneric
	}
	return e.Code
}

func asExitError(code int, err error) error {
	if err == nil {
		return nil
	}
	var withExit interface{ ExitCode() int }
	if errors.As(err, &withExit) {
		return err
	}
	return &ExitError{Code: code, Err: err}
}

// mapCommandError translates store and filesystem failures into exit codes.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	var withExit interface{ ExitCode() int }
	if errors.As(err, &withExit) {
		return err
	}

	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return asExitError(ExitCodeNotFound, err)
	case errors.Is(err, inventory.ErrValidation):
		return asExitError(ExitCodeValidation, err)
	case errors.Is(err, inventory.ErrDecryption):
		return asExitError(ExitCodeDecryption, err)
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, os.ErrNotExist) {
		return asExitError(ExitCodeIO, err)
	}

	return asExitError(ExitCodeGeneric, err)
}

func usageErrorf(format string, args ...any) error {
	return &ExitError{
		Code: ExitCodeUsage,
		Err:  fmt.Errorf(format, args...),
	}
}
