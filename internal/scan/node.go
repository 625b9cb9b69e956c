package scan

import (
	"github.com/rumor-ml/commons.systems/bai2parse/internal/fields"
)

// RecordKind identifies the role of a physical BAI2 record.
type RecordKind string

const (
	KindFileHeader        RecordKind = "file header"        // 01
	KindGroupHeader       RecordKind = "group header"       // 02
	KindAccountIdentifier RecordKind = "account identifier" // 03
	KindTransactionDetail RecordKind = "transaction detail" // 16
	KindAccountTrailer    RecordKind = "account trailer"    // 49
	KindContinuation      RecordKind = "continuation"       // 88
	KindGroupTrailer      RecordKind = "group trailer"      // 98
	KindFileTrailer       RecordKind = "file trailer"       // 99

	// KindBlank marks lines too short to carry a record-type code.
	KindBlank RecordKind = "blank"
	// KindUnrecognized marks two-character codes outside the documented
	// set. These lines are skipped, not rejected, so vendor-specific
	// records pass through unparsed.
	KindUnrecognized RecordKind = "unrecognized"
)

var recordCodes = map[string]RecordKind{
	"01": KindFileHeader,
	"02": KindGroupHeader,
	"03": KindAccountIdentifier,
	"16": KindTransactionDetail,
	"49": KindAccountTrailer,
	"88": KindContinuation,
	"98": KindGroupTrailer,
	"99": KindFileTrailer,
}

// Classify maps a physical line to its record kind by reading exactly the
// first two characters.
func Classify(line string) RecordKind {
	if len(line) < 2 {
		return KindBlank
	}
	if kind, ok := recordCodes[line[:2]]; ok {
		return kind
	}
	return KindUnrecognized
}

// Node is one logical record in the scanned tree: a header, trailer or
// detail record together with its nested children, its continuation
// fragments, and (for headers) the paired trailer record.
//
// Nodes are built exclusively by the Scanner; once Scan returns they are
// read-only.
type Node struct {
	kind          RecordKind
	line          string
	children      []*Node
	continuations []*Node
	sibling       *Node
}

func newNode(kind RecordKind, line string) *Node {
	return &Node{kind: kind, line: line}
}

// Kind returns the record kind of this node.
func (n *Node) Kind() RecordKind { return n.kind }

// Line returns the original physical line, retained for diagnostics.
func (n *Node) Line() string { return n.line }

// Children returns a copy of the nested records, in file order.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

// Sibling returns the paired trailer record, or nil. The trailer is owned
// by its header and is never a child.
func (n *Node) Sibling() *Node { return n.sibling }

// HasContinuations reports whether any continuation records were merged
// into this node.
func (n *Node) HasContinuations() bool { return len(n.continuations) > 0 }

// Fields returns the merged field list: this node's own comma-split fields
// followed by each continuation's fields with the continuation's leading
// record-type field dropped. A record split across continuation lines
// therefore reads identically to the same record written on one line.
func (n *Node) Fields() []string {
	merged := fields.Split(n.line)
	for _, c := range n.continuations {
		cf := fields.Split(c.line)
		if len(cf) > 1 {
			merged = append(merged, cf[1:]...)
		}
	}
	return merged
}

// SiblingFields returns the merged fields of the paired trailer, or an
// empty list when no trailer was attached.
func (n *Node) SiblingFields() []string {
	if n.sibling == nil {
		return nil
	}
	return n.sibling.Fields()
}

func (n *Node) pushChild(child *Node)    { n.children = append(n.children, child) }
func (n *Node) pushContinuation(c *Node) { n.continuations = append(n.continuations, c) }
func (n *Node) setSibling(s *Node)       { n.sibling = s }
