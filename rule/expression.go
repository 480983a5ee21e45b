// Package rule compiles textual attribute rules, such as
// "age > 30 AND department == sales", into immutable expression trees.
package rule

type NodeType string
type CompareOp string
type LogicalOp string

const (
	Comparison NodeType = "comparison"
	Logical    NodeType = "logical"
)

// Two-character operators must come before their one-character prefixes
// everywhere they are matched.
const (
	Equal        CompareOp = "=="
	NotEqual     CompareOp = "!="
	GreaterEqual CompareOp = ">="
	LessEqual    CompareOp = "<="
	Greater      CompareOp = ">"
	Less         CompareOp = "<"
)

const (
	And LogicalOp = "AND"
	Or  LogicalOp = "OR"
)

// Node is a single node of a compiled rule. It has exactly one of two
// shapes, discriminated by Type: a comparison leaf (Attribute, Compare,
// StrValue, GoValue set; Left and Right nil) or a logical node (Logical,
// Left, Right set). A node is never mutated after Compile returns it.
type Node struct {
	Type NodeType

	// comparison leaf
	Attribute string
	Compare   CompareOp
	StrValue  string
	GoValue   any

	// logical node
	Logical LogicalOp
	Left    *Node
	Right   *Node
}
