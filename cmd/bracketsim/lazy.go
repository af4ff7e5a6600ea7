package main

import (
	"io"
	"os"
)

// lazyFile creates its file on the first Write, so a failed run leaves no
// empty output behind.
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil {
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return 0, err
		}
		l.f = f
	}

	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}

	return l.f.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for "-" or "" and a lazy file otherwise.
func openOutput(path string, stdout io.Writer) io.WriteCloser {
	if path == "" || path == stdoutName {
		return nopCloser{stdout}
	}

	return &lazyFile{path: path}
}
