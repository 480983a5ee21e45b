package rule

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRule is returned by Compile when the rule text is blank.
	ErrEmptyRule = errors.New("rule string is empty or only contains whitespace")

	// ErrNoExpression is returned when the rule text yields no expressions
	// at all, for example when Combine is called with an empty rule list.
	ErrNoExpression = errors.New("invalid rule structure: no valid expressions were found")
)

// MalformedComparisonError reports a fragment that doesn't split into
// attribute, comparison operator and literal.
type MalformedComparisonError struct {
	Fragment string
}

func (e *MalformedComparisonError) Error() string {
	return fmt.Sprintf("invalid comparison structure: '%s'", e.Fragment)
}

// InsufficientOperandsError reports a logical operator that doesn't have two
// expressions to connect.
type InsufficientOperandsError struct {
	Operator LogicalOp
}

func (e *InsufficientOperandsError) Error() string {
	return fmt.Sprintf("insufficient expressions in stack for logical operator '%s'", e.Operator)
}

// UnreducedStackError reports a rule whose expressions weren't all joined by
// logical operators, leaving more than one tree on the stack.
type UnreducedStackError struct {
	Pending int
}

func (e *UnreducedStackError) Error() string {
	return fmt.Sprintf("invalid rule structure: final stack contains %d items instead of 1", e.Pending)
}

// UnsupportedCombinatorError reports a Combine call with an operator other
// than And or Or.
type UnsupportedCombinatorError struct {
	Operator LogicalOp
}

func (e *UnsupportedCombinatorError) Error() string {
	return fmt.Sprintf("unsupported operator '%s' for combining rules, use '%s' or '%s'", e.Operator, And, Or)
}
