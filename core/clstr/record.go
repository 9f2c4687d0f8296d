// core/clstr/record.go
package clstr

import "strconv"

// Unit tags a member length as amino acids or nucleotides.
type Unit string

const (
	UnitAminoAcid  Unit = "aa"
	UnitNucleotide Unit = "nt"
)

// Percent is one side of an identity annotation. Prec is the number of
// fraction digits as printed in the source, so values round-trip exactly.
type Percent struct {
	Value float64
	Prec  int
}

// NewPercent builds a Percent with the conventional one-decimal precision.
// Use it for programmatically constructed members; the parser fills Prec
// from the source text instead.
func NewPercent(v float64) *Percent {
	return &Percent{Value: v, Prec: 1}
}

func (p *Percent) String() string {
	return strconv.FormatFloat(p.Value, 'f', p.Prec, 64) + "%"
}

// Identity is the percent identity of a non-representative member relative
// to its cluster's representative. Fwd and Rev are independently optional:
// one-way clustering reports only Fwd, bidirectional (2-d) clustering may
// report either side, with a literal "-" standing in for an unreported one.
//
// Paired records that the source used the slash dialect ("X%/Y%", "-/Y%",
// "X%/-"). It is kept so the reciprocal "X%/-" form is not collapsed into
// the plain one-way form on output.
type Identity struct {
	Fwd    *Percent
	Rev    *Percent
	Paired bool
}

// String renders the identity in its canonical tail form, without the
// leading "at ".
func (id *Identity) String() string {
	switch {
	case id.Fwd != nil && id.Rev != nil:
		return id.Fwd.String() + "/" + id.Rev.String()
	case id.Fwd != nil && id.Paired:
		return id.Fwd.String() + "/-"
	case id.Fwd != nil:
		return id.Fwd.String()
	case id.Rev != nil:
		return "-/" + id.Rev.String()
	}
	return "-"
}

// Member is one sequence entry inside a cluster.
// Representative and Identity are mutually exclusive: the representative
// carries no identity score, every other member carries at least one side.
type Member struct {
	Index          int
	Length         int
	Unit           Unit
	SequenceID     string
	Representative bool
	Identity       *Identity
}

// Cluster is one ">Cluster N" block. Members keep their source order; the
// first representative found is the authoritative one.
type Cluster struct {
	ID      int
	Members []Member
}

// Size returns the number of members.
func (c *Cluster) Size() int { return len(c.Members) }

// Representative returns the cluster's seed member, or nil when the cluster
// violates the one-representative invariant.
func (c *Cluster) Representative() *Member {
	for i := range c.Members {
		if c.Members[i].Representative {
			return &c.Members[i]
		}
	}
	return nil
}

func countRepresentatives(c *Cluster) int {
	n := 0
	for i := range c.Members {
		if c.Members[i].Representative {
			n++
		}
	}
	return n
}

// Source yields clusters in stream order. Next returns io.EOF after the
// final cluster. Parser and Monotonic both satisfy it.
type Source interface {
	Next() (*Cluster, error)
}
