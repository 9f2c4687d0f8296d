// internal/writers/open.go
package writers

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"

	"clstr-core/clstr"
)

// OpenClstr returns a cluster writer for path. "-" reuses the app's buffered
// stdout writer so tests and pipes see the output; otherwise the path is
// created via the core convenience constructor (gzip on .gz suffix).
// The returned func finalizes the writer.
func OpenClstr(path string, stdout io.Writer) (*clstr.Writer, func() error, error) {
	if path == "-" {
		w := clstr.NewWriter(stdout)
		return w, w.Flush, nil
	}
	of, err := clstr.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return of.Writer, of.Close, nil
}

// OpenOut returns a plain byte sink for path, for non-.clstr payloads
// (FASTA extraction). "-" reuses stdout; a .gz suffix enables parallel gzip,
// which pays off on large extractions.
func OpenOut(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		zw, err := pgzip.NewWriterLevel(fh, pgzip.BestSpeed)
		if err != nil {
			_ = fh.Close()
			return nil, nil, err
		}
		closeFn := func() error {
			err := zw.Close()
			if cerr := fh.Close(); cerr != nil && err == nil {
				err = cerr
			}
			return err
		}
		return zw, closeFn, nil
	}
	return fh, fh.Close, nil
}
