// Package eval walks a compiled rule tree against a flat record of
// attribute values and produces a boolean verdict.
package eval

import (
	"rulegate/rule"
)

// Evaluate recursively tests the expression tree against the record. It is a
// pure function of its inputs: nothing is cached and the record is never
// retained. Record keys are expected to be lower-case, matching the
// lower-casing the compiler applies to attribute names. A nil tree evaluates
// to false without error.
func Evaluate(node *rule.Node, record map[string]any) (bool, error) {
	if node == nil {
		return false, nil
	}

	switch node.Type {
	case rule.Comparison:
		return evaluateComparison(node, record)
	case rule.Logical:
		switch node.Logical {
		case rule.And:
			return evaluateAnd(node, record)
		case rule.Or:
			return evaluateOr(node, record)
		}
	}

	return false, &UnsupportedLogicalOperatorError{Operator: node.Logical}
}
