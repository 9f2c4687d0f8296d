// core/clstr/errors.go
package clstr

import (
	"errors"
	"fmt"
)

// ErrKind classifies parse failures.
type ErrKind int

const (
	ErrInvalidHeader ErrKind = iota + 1
	ErrInvalidMemberLine
	ErrInvalidIdentity
	ErrMemberBeforeHeader
	ErrMultipleRepresentatives
	ErrNoRepresentative
	ErrNonMonotonicID
)

func (k ErrKind) String() string {
	switch k {
	case ErrInvalidHeader:
		return "invalid cluster header"
	case ErrInvalidMemberLine:
		return "invalid member line"
	case ErrInvalidIdentity:
		return "invalid identity"
	case ErrMemberBeforeHeader:
		return "member line before any cluster header"
	case ErrMultipleRepresentatives:
		return "multiple representatives in cluster"
	case ErrNoRepresentative:
		return "no representative in cluster"
	case ErrNonMonotonicID:
		return "cluster ids not strictly increasing"
	}
	return "unknown error"
}

// ParseError describes a structural or semantic fault in a .clstr stream.
// Line is 1-based; 0 means the error is not tied to a single line.
type ParseError struct {
	Kind ErrKind
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Text != "" {
		msg = fmt.Sprintf("%s (%q)", msg, e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "clstr: " + msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, k ErrKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == k
}

// InvalidClusterError is returned by Writer.WriteCluster for a cluster that
// cannot be serialized without producing malformed output.
type InvalidClusterError struct {
	ID     int
	Reason string
}

func (e *InvalidClusterError) Error() string {
	return fmt.Sprintf("clstr: cluster %d: %s", e.ID, e.Reason)
}
