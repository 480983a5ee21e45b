package eval

import (
	"fmt"

	"rulegate/rule"
)

// MissingAttributeError reports an attribute referenced by the rule that is
// absent from the record.
type MissingAttributeError struct {
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("data is missing required attribute '%s'", e.Attribute)
}

// TypeMismatchError reports an ordering comparison between operands of
// different kinds, such as an integer attribute against a string literal.
type TypeMismatchError struct {
	Attribute string
	Operator  rule.CompareOp
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot apply '%s' to attribute '%s': operands have different types", e.Operator, e.Attribute)
}

// UnsupportedOperatorError reports a comparison leaf carrying an operator the
// evaluator doesn't know. Trees built by the compiler never trigger it.
type UnsupportedOperatorError struct {
	Operator rule.CompareOp
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator '%s'", e.Operator)
}

// UnsupportedLogicalOperatorError reports a node whose shape or logical
// operator the evaluator doesn't know. Trees built by the compiler never
// trigger it.
type UnsupportedLogicalOperatorError struct {
	Operator rule.LogicalOp
}

func (e *UnsupportedLogicalOperatorError) Error() string {
	return fmt.Sprintf("unsupported logical operator '%s'", e.Operator)
}
