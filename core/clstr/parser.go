// core/clstr/parser.go
package clstr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parser is a pull-based reader of .clstr streams. Each Next call yields one
// complete cluster; cluster boundaries are header-triggered, so the cluster
// in progress is flushed when the next ">Cluster N" line (or end of stream)
// is seen. The parser is forward-only and keeps at most one cluster in
// memory, so multi-million-sequence files stream in constant space.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	sc   *bufio.Scanner
	line int
	cur  *Cluster
	done bool
}

// NewParser returns a Parser reading from r. The caller owns r's lifecycle.
func NewParser(r io.Reader) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	return &Parser{sc: sc}
}

// Next returns the next cluster, or io.EOF at the end of the stream.
// Errors are per-item: after a non-EOF error the caller may keep calling
// Next to resume at the following recognizable line.
func (p *Parser) Next() (*Cluster, error) {
	if p.done {
		return nil, io.EOF
	}
	for p.sc.Scan() {
		p.line++
		line := strings.TrimRight(p.sc.Text(), "\r")
		if line == "" {
			continue
		}
		switch {
		case line[0] == '>':
			id, err := parseHeader(line, p.line)
			if err != nil {
				return nil, err
			}
			prev := p.cur
			p.cur = &Cluster{ID: id}
			if prev != nil {
				if err := checkRepresentative(prev, p.line-1); err != nil {
					return nil, err
				}
				return prev, nil
			}
		case line[0] >= '0' && line[0] <= '9':
			if p.cur == nil {
				return nil, &ParseError{Kind: ErrMemberBeforeHeader, Line: p.line, Text: line}
			}
			m, err := parseMember(line, p.line)
			if err != nil {
				return nil, err
			}
			p.cur.Members = append(p.cur.Members, m)
		default:
			// formatting noise; tolerated
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("clstr: line %d: read: %w", p.line+1, err)
	}
	p.done = true
	if prev := p.cur; prev != nil {
		p.cur = nil
		if err := checkRepresentative(prev, p.line); err != nil {
			return nil, err
		}
		return prev, nil
	}
	return nil, io.EOF
}

// ReadAll drains src into a slice, aborting at the first error.
func ReadAll(src Source) ([]*Cluster, error) {
	var out []*Cluster
	for {
		c, err := src.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
}

func checkRepresentative(c *Cluster, ln int) error {
	switch n := countRepresentatives(c); {
	case n == 0:
		return &ParseError{Kind: ErrNoRepresentative, Line: ln, Text: fmt.Sprintf("cluster %d", c.ID)}
	case n > 1:
		return &ParseError{Kind: ErrMultipleRepresentatives, Line: ln, Text: fmt.Sprintf("cluster %d", c.ID)}
	}
	return nil
}

func parseHeader(line string, ln int) (int, error) {
	rest, ok := strings.CutPrefix(line, ">Cluster")
	if !ok {
		return 0, &ParseError{Kind: ErrInvalidHeader, Line: ln, Text: line}
	}
	id, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || id < 0 {
		return 0, &ParseError{Kind: ErrInvalidHeader, Line: ln, Text: line, Err: err}
	}
	return id, nil
}

// parseMember understands "<index>\t<len><unit>, ><id>... <tail>" where tail
// is "*" for the representative or "at <identity>" otherwise.
func parseMember(line string, ln int) (Member, error) {
	bad := func(err error) (Member, error) {
		return Member{}, &ParseError{Kind: ErrInvalidMemberLine, Line: ln, Text: line, Err: err}
	}

	f := strings.Fields(line)
	if len(f) < 4 {
		return bad(nil)
	}

	idx, err := strconv.Atoi(f[0])
	if err != nil || idx < 0 {
		return bad(err)
	}

	lenTok, ok := strings.CutSuffix(f[1], ",")
	if !ok {
		return bad(nil)
	}
	var unit Unit
	switch {
	case strings.HasSuffix(lenTok, string(UnitAminoAcid)):
		unit = UnitAminoAcid
	case strings.HasSuffix(lenTok, string(UnitNucleotide)):
		unit = UnitNucleotide
	default:
		return bad(nil)
	}
	length, err := strconv.Atoi(strings.TrimSuffix(lenTok, string(unit)))
	if err != nil {
		return bad(err)
	}

	idTok, ok := strings.CutPrefix(f[2], ">")
	if !ok {
		return bad(nil)
	}
	id, ok := strings.CutSuffix(idTok, "...")
	if !ok {
		return bad(nil)
	}

	m := Member{Index: idx, Length: length, Unit: unit, SequenceID: id}
	switch tail := f[3:]; {
	case len(tail) == 1 && tail[0] == "*":
		m.Representative = true
	case len(tail) == 2 && tail[0] == "at":
		ident, err := parseIdentity(tail[1], line, ln)
		if err != nil {
			return Member{}, err
		}
		m.Identity = ident
	default:
		return bad(nil)
	}
	return m, nil
}

func parseIdentity(tok, line string, ln int) (*Identity, error) {
	bad := func(err error) (*Identity, error) {
		return nil, &ParseError{Kind: ErrInvalidIdentity, Line: ln, Text: line, Err: err}
	}

	if i := strings.IndexByte(tok, '/'); i >= 0 {
		id := &Identity{Paired: true}
		if fwd := tok[:i]; fwd != "-" {
			p, err := parsePercent(fwd)
			if err != nil {
				return bad(err)
			}
			id.Fwd = p
		}
		if rev := tok[i+1:]; rev != "-" {
			p, err := parsePercent(rev)
			if err != nil {
				return bad(err)
			}
			id.Rev = p
		}
		if id.Fwd == nil && id.Rev == nil {
			return bad(nil)
		}
		return id, nil
	}
	p, err := parsePercent(tok)
	if err != nil {
		return bad(err)
	}
	return &Identity{Fwd: p}, nil
}

func parsePercent(tok string) (*Percent, error) {
	num, ok := strings.CutSuffix(tok, "%")
	if !ok {
		return nil, fmt.Errorf("missing %% in %q", tok)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, err
	}
	if v < 0 {
		return nil, fmt.Errorf("negative percentage %q", tok)
	}
	prec := 0
	if j := strings.IndexByte(num, '.'); j >= 0 {
		prec = len(num) - j - 1
	}
	return &Percent{Value: v, Prec: prec}, nil
}
