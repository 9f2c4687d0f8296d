// internal/seqdb/seqdb.go
package seqdb

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"

	"clstr-core/fasta"
)

// DB is an in-memory FASTA database keyed by sequence id. Cluster files
// reference sequences by id only, so extraction needs random access to the
// originating database.
type DB struct {
	recs map[string]fasta.Record
}

// Load reads the whole database at path ("-" = stdin). Gzip input is
// detected by magic number (1F 8B) or a .gz suffix and decompressed in
// parallel; sequence databases are routinely multi-gigabyte.
func Load(path string) (*DB, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	db := &DB{recs: map[string]fasta.Record{}}
	err = fasta.Stream(rc, func(r fasta.Record) error {
		db.recs[r.ID] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Get returns the record for id.
func (d *DB) Get(id string) (fasta.Record, bool) {
	r, ok := d.recs[id]
	return r, ok
}

// Len returns the number of records loaded.
func (d *DB) Len() int { return len(d.recs) }

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		zr, err := pgzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr, fh}}, nil
	}
	return fh, nil
}
