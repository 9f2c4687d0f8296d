// core/clstr/validate.go
package clstr

import "fmt"

// Monotonic wraps a Source and rejects cluster ids that do not strictly
// increase. The base parser deliberately yields ids as printed; callers that
// need ordering guarantees compose this on top.
type Monotonic struct {
	src  Source
	last int
	seen bool
}

// NewMonotonic returns a Source enforcing strictly increasing cluster ids.
func NewMonotonic(src Source) *Monotonic {
	return &Monotonic{src: src}
}

func (m *Monotonic) Next() (*Cluster, error) {
	c, err := m.src.Next()
	if err != nil {
		return nil, err
	}
	if m.seen && c.ID <= m.last {
		return nil, &ParseError{
			Kind: ErrNonMonotonicID,
			Text: fmt.Sprintf("cluster %d after %d", c.ID, m.last),
		}
	}
	m.seen = true
	m.last = c.ID
	return c, nil
}
