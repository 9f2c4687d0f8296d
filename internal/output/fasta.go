// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"clstr-core/fasta"
)

// WriteFASTARecord writes one record, keeping the description when present.
func WriteFASTARecord(w io.Writer, r fasta.Record) error {
	if r.Desc != "" {
		_, err := fmt.Fprintf(w, ">%s %s\n%s\n", r.ID, r.Desc, r.Seq)
		return err
	}
	_, err := fmt.Fprintf(w, ">%s\n%s\n", r.ID, r.Seq)
	return err
}
