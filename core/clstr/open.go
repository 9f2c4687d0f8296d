// core/clstr/open.go
package clstr

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multiCloser closes several io.Closers, keeping the first error.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var err error
	for _, c := range m {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// File is a Parser bound to an opened path.
type File struct {
	*Parser
	c io.Closer
}

func (f *File) Close() error { return f.c.Close() }

// Open opens a .clstr file and returns a ready Parser. "-" reads stdin.
// Gzip input is detected by magic number (1F 8B) or a .gz suffix.
func Open(path string) (*File, error) {
	if path == "-" {
		return &File{Parser: NewParser(os.Stdin), c: nopCloser{}}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &File{Parser: NewParser(gr), c: multiCloser{gr, fh}}, nil
	}
	return &File{Parser: NewParser(fh), c: fh}, nil
}

// OutFile is a Writer bound to a created path. Close flushes the writer and
// releases the file.
type OutFile struct {
	*Writer
	c io.Closer
}

func (f *OutFile) Close() error {
	err := f.Flush()
	if cerr := f.c.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Create creates path and returns a ready Writer. "-" writes to stdout
// (left open on Close); a .gz suffix enables gzip compression.
func Create(path string) (*OutFile, error) {
	if path == "-" {
		return &OutFile{Writer: NewWriter(os.Stdout), c: nopCloser{}}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(fh)
		return &OutFile{Writer: NewWriter(gw), c: multiCloser{gw, fh}}, nil
	}
	return &OutFile{Writer: NewWriter(fh), c: fh}, nil
}
