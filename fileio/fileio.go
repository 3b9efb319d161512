// Package fileio reads whole files and reports failures as FileFailures that
// carry the OS error code.
//
// Failure reasons:
//
//	cannot open "<path>": <error text>              (errno set)
//	cannot fstat "<path>": <error text>             (errno set, caused by a SyscallFailure)
//	"<path>" is not a regular file                  (errno 0)
//	cannot read N byte(s) from "<path>": <error text> (errno set, 0 on a short file)
package fileio

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/xgx-io/failchain"
)

// ReadText returns the contents of the regular file at path as a string. An
// empty file yields "".
func ReadText(path string) (string, error) {
	buf, err := readFile(path)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadBinary returns the contents of the regular file at path. An empty file
// yields an empty, non-nil slice.
func ReadBinary(path string) ([]byte, error) {
	return readFile(path)
}

func openFailure(path string, err error) error {
	return failchain.File(fmt.Sprintf(`cannot open "%s": %s`, path, errText(err)), errnoOf(err), nil)
}

// statFailure keeps the failed call itself as the cause, since fstat on an
// open descriptor fails only on OS-level trouble.
func statFailure(path string, err error) error {
	errno := errnoOf(err)
	return failchain.File(fmt.Sprintf(`cannot fstat "%s": %s`, path, errText(err)), errno,
		failchain.Syscall("fstat", errno, nil))
}

func notRegular(path string) error {
	return failchain.File(fmt.Sprintf(`"%s" is not a regular file`, path), 0, nil)
}

func readFailure(path string, size int64, err error) error {
	unit := "bytes"
	if size == 1 {
		unit = "byte"
	}
	return failchain.File(fmt.Sprintf(`cannot read %d %s from "%s": %s`, size, unit, path, errText(err)), errnoOf(err), nil)
}

// errnoOf extracts the OS error code from err, or 0.
func errnoOf(err error) int {
	var en syscall.Errno
	if errors.As(err, &en) {
		return int(en)
	}
	return 0
}

// errText prefers the bare OS error text over the wrapped *PathError form.
func errText(err error) string {
	var en syscall.Errno
	if errors.As(err, &en) {
		return en.Error()
	}
	return err.Error()
}
