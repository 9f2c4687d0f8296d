// internal/seqdb/seqdb_test.go
package seqdb

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = ">seq1 seed\nMKV\nLLT\n>seq2\nMKL\n"

func TestLoadPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.fasta")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	db, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, db.Len())

	r, ok := db.Get("seq1")
	require.True(t, ok)
	require.Equal(t, "seed", r.Desc)
	require.Equal(t, "MKVLLT", string(r.Seq))

	_, ok = db.Get("seq9")
	require.False(t, ok)
}

func TestLoadGzipByMagic(t *testing.T) {
	// deliberately no .gz suffix, detection must use the magic number
	path := filepath.Join(t.TempDir(), "db.fasta")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	db, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, db.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.fasta"))
	require.Error(t, err)
}
