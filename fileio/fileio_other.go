//go:build !unix

package fileio

import (
	"io"
	"os"
)

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openFailure(path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, statFailure(path, err)
	}
	if !st.Mode().IsRegular() {
		return nil, notRegular(path)
	}

	buf := make([]byte, st.Size())
	if len(buf) == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, readFailure(path, st.Size(), err)
	}
	return buf, nil
}
