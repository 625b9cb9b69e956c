// Package scan implements the structural pass over a BAI2 file: a
// single-pass, stack-based state machine that classifies each physical line
// by its two-character record code, enforces the File/Group/Account/
// Transaction nesting grammar, merges continuation lines into their owning
// record, and produces a validated tree of Nodes.
package scan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRecords is returned when the input contains no lines at all.
var ErrNoRecords = errors.New("no records found in file")

// StructuralError reports a violation of the record-nesting grammar. It
// carries the offending record kind and the nesting context at the point of
// failure. Structural errors are terminal: the scanner makes no attempt at
// recovery.
type StructuralError struct {
	Kind    RecordKind // the record kind that could not be placed
	Context string     // what the scanner needed and did not have
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s found without %s", e.Kind, e.Context)
}

// Scanner scans the lines of one BAI2 document. A Scanner owns its stack
// and output tree, so independent documents can be scanned concurrently
// with one Scanner each.
type Scanner struct {
	lines []string
	stack []*Node
	done  bool
}

// New creates a scanner over the decoded contents of a BAI2 file.
func New(content string) *Scanner {
	return &Scanner{lines: strings.Split(content, "\n")}
}

// Scan consumes the input line by line and returns the root of the record
// tree: the file header node carrying its groups, accounts, transactions,
// continuations and its file trailer sibling.
//
// Scanning stops as soon as the file trailer is attached; trailing lines
// never alter the built structure. At end of input any still-open records
// are closed into their parents so the root is always the single return
// value.
func (s *Scanner) Scan() (*Node, error) {
	i := 0

	// Skip leading blank lines. The first real line must be the file
	// header.
	for ; i < len(s.lines); i++ {
		if Classify(trimLine(s.lines[i])) != KindBlank {
			break
		}
	}
	if i == len(s.lines) {
		return nil, ErrNoRecords
	}

	first := trimLine(s.lines[i])
	if Classify(first) != KindFileHeader {
		return nil, &StructuralError{Kind: Classify(first), Context: "file header"}
	}
	s.push(KindFileHeader, first)
	i++

	for ; i < len(s.lines) && !s.done; i++ {
		if err := s.handleLine(trimLine(s.lines[i])); err != nil {
			return nil, err
		}
	}

	// Close any records left open at end of input so the file header is
	// the single root.
	for len(s.stack) > 1 {
		s.pop()
	}
	return s.stack[0], nil
}

func trimLine(line string) string {
	return strings.TrimSuffix(line, "\r")
}

func (s *Scanner) handleLine(line string) error {
	kind := Classify(line)

	switch kind {
	case KindBlank, KindUnrecognized:
		// Tolerated for forward compatibility; vendor-specific records
		// pass through unparsed.
		return nil

	case KindGroupHeader:
		if s.topKind() != KindFileHeader {
			return &StructuralError{Kind: kind, Context: "file header"}
		}
		s.push(kind, line)

	case KindAccountIdentifier:
		if s.topKind() != KindGroupHeader {
			return &StructuralError{Kind: kind, Context: "group header"}
		}
		s.push(kind, line)

	case KindTransactionDetail:
		switch s.topKind() {
		case KindAccountIdentifier:
		case KindTransactionDetail:
			s.pop()
		default:
			return &StructuralError{Kind: kind, Context: "account identifier"}
		}
		s.push(kind, line)

	case KindAccountTrailer:
		switch s.topKind() {
		case KindAccountIdentifier:
		case KindTransactionDetail:
			s.pop()
		default:
			return &StructuralError{Kind: kind, Context: "account identifier"}
		}
		s.top().setSibling(newNode(kind, line))
		s.pop()

	case KindGroupTrailer:
		if s.topKind() != KindGroupHeader {
			return &StructuralError{Kind: kind, Context: "group header"}
		}
		s.top().setSibling(newNode(kind, line))
		s.pop()

	case KindFileTrailer:
		if s.topKind() != KindFileHeader {
			return &StructuralError{Kind: kind, Context: "file header"}
		}
		s.top().setSibling(newNode(kind, line))
		s.done = true

	case KindContinuation:
		// A continuation extends whatever record is innermost-open when
		// it is read.
		s.top().pushContinuation(newNode(kind, line))

	case KindFileHeader:
		return &StructuralError{Kind: kind, Context: "preceding file trailer"}
	}

	return nil
}

func (s *Scanner) push(kind RecordKind, line string) {
	s.stack = append(s.stack, newNode(kind, line))
}

// pop closes the innermost open record by attaching it as a child of the
// record below it on the stack.
func (s *Scanner) pop() {
	child := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.stack[len(s.stack)-1].pushChild(child)
}

func (s *Scanner) top() *Node {
	return s.stack[len(s.stack)-1]
}

func (s *Scanner) topKind() RecordKind {
	if len(s.stack) == 0 {
		return KindBlank
	}
	return s.top().kind
}
