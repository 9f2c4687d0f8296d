// core/clstr/writer.go
package clstr

import (
	"bufio"
	"fmt"
	"io"
)

// Writer serializes clusters back to the .clstr text form. Each WriteCluster
// call emits one full block; Flush pushes buffered bytes to the sink. The
// caller owns the sink's lifecycle.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteCluster validates and serializes c. Clusters that would produce
// malformed output are rejected before anything is emitted.
func (w *Writer) WriteCluster(c *Cluster) error {
	if n := countRepresentatives(c); n != 1 {
		return &InvalidClusterError{ID: c.ID, Reason: fmt.Sprintf("has %d representatives (want exactly 1)", n)}
	}
	for i := range c.Members {
		m := &c.Members[i]
		if !m.Representative && (m.Identity == nil || (m.Identity.Fwd == nil && m.Identity.Rev == nil)) {
			return &InvalidClusterError{ID: c.ID, Reason: fmt.Sprintf("member %d (%s) has no identity", m.Index, m.SequenceID)}
		}
	}

	if _, err := fmt.Fprintf(w.bw, ">Cluster %d\n", c.ID); err != nil {
		return err
	}
	for i := range c.Members {
		m := &c.Members[i]
		tail := "*"
		if !m.Representative {
			tail = "at " + m.Identity.String()
		}
		if _, err := fmt.Fprintf(w.bw, "%d\t%d%s, >%s... %s\n",
			m.Index, m.Length, m.Unit, m.SequenceID, tail); err != nil {
			return err
		}
	}
	return nil
}

// Flush forces buffered output to the underlying sink.
func (w *Writer) Flush() error { return w.bw.Flush() }
