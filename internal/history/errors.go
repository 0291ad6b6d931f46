package history

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by *ParseError via errors.Is.
var (
	ErrUnrecognizedSegment = errors.New("unrecognized changeset format")
	ErrItemPath            = errors.New("item path is not a server path")
	ErrNoItems             = errors.New("changeset has no items")
	ErrDate                = errors.New("unparseable changeset date")
)

// FaultKind classifies a parse fault.
type FaultKind int

const (
	FaultUnrecognized FaultKind = iota
	FaultItemPath
	FaultNoItems
	FaultDate
)

// String returns a string representation of the fault kind.
func (k FaultKind) String() string {
	switch k {
	case FaultUnrecognized:
		return "unrecognized"
	case FaultItemPath:
		return "item-path"
	case FaultNoItems:
		return "no-items"
	case FaultDate:
		return "date"
	default:
		return "unknown"
	}
}

func (k FaultKind) sentinel() error {
	switch k {
	case FaultItemPath:
		return ErrItemPath
	case FaultNoItems:
		return ErrNoItems
	case FaultDate:
		return ErrDate
	default:
		return ErrUnrecognizedSegment
	}
}

// ParseError is returned when tf output cannot be turned into change sets.
// Such faults mean the tool printed a format this parser does not know;
// Segment holds the raw text so it can be attached to a bug report.
type ParseError struct {
	Kind    FaultKind
	Segment string
	// Offset is the character offset of the offending path within the
	// items block, or -1 when not applicable.
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	return fmt.Sprintf("%s; please report this output: %q", msg, e.Segment)
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the fault kind.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newParseError(kind FaultKind, segment string, offset int, err error) *ParseError {
	return &ParseError{Kind: kind, Segment: segment, Offset: offset, Err: err}
}
