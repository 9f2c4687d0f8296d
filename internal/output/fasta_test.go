// internal/output/fasta_test.go
package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"clstr-core/fasta"
)

func TestWriteFASTARecord(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteFASTARecord(&b, fasta.Record{ID: "seq1", Desc: "seed", Seq: []byte("MKV")}))
	require.NoError(t, WriteFASTARecord(&b, fasta.Record{ID: "seq2", Seq: []byte("MKL")}))
	require.Equal(t, ">seq1 seed\nMKV\n>seq2\nMKL\n", b.String())
}
