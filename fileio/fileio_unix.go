//go:build unix

package fileio

import (
	"io"

	"golang.org/x/sys/unix"
)

// readFile steps down to system calls so that every failure carries the
// errno that caused it.
func readFile(path string) ([]byte, error) {
	fd, err := retry(func() (int, error) {
		return unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	})
	if err != nil {
		return nil, openFailure(path, err)
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, statFailure(path, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return nil, notRegular(path)
	}

	buf := make([]byte, st.Size)
	if st.Size == 0 {
		return buf, nil
	}

	off := 0
	for off < len(buf) {
		n, err := retry(func() (int, error) { return unix.Read(fd, buf[off:]) })
		if err != nil {
			return nil, readFailure(path, st.Size, err)
		}
		if n == 0 {
			return nil, readFailure(path, st.Size, io.ErrUnexpectedEOF)
		}
		off += n
	}
	return buf, nil
}

// retry repeats fn while it is interrupted by a signal.
func retry(fn func() (int, error)) (int, error) {
	for {
		n, err := fn()
		if err != unix.EINTR {
			return n, err
		}
	}
}
