package eval

import (
	"rulegate/rule"
)

func evaluateAnd(node *rule.Node, record map[string]any) (bool, error) {
	left, err := Evaluate(node.Left, record)
	if err != nil {
		return false, err
	}

	if !left {
		return false, nil
	}

	return Evaluate(node.Right, record)
}

func evaluateOr(node *rule.Node, record map[string]any) (bool, error) {
	left, err := Evaluate(node.Left, record)
	if err != nil {
		return false, err
	}

	if left {
		return true, nil
	}

	return Evaluate(node.Right, record)
}

func evaluateComparison(node *rule.Node, record map[string]any) (bool, error) {
	value, ok := record[node.Attribute]
	if !ok {
		return false, &MissingAttributeError{Attribute: node.Attribute}
	}

	switch node.Compare {
	case rule.Equal:
		return equal(value, node.GoValue), nil
	case rule.NotEqual:
		return !equal(value, node.GoValue), nil
	case rule.Greater, rule.GreaterEqual, rule.Less, rule.LessEqual:
		return order(node, value)
	}

	return false, &UnsupportedOperatorError{Operator: node.Compare}
}

// equal is defined across all operand kinds: values of different kinds are
// simply unequal. String comparisons are case-sensitive.
func equal(left, right any) bool {
	if l, ok := intValue(left); ok {
		r, ok := intValue(right)
		return ok && l == r
	}

	if l, ok := left.(string); ok {
		r, ok := right.(string)
		return ok && l == r
	}

	return left == right
}

// order applies the leaf's ordering operator. Integers compare numerically
// and strings byte-wise; ordering across mixed kinds has no defined meaning
// and fails instead of silently coercing.
func order(node *rule.Node, value any) (bool, error) {
	if l, ok := intValue(value); ok {
		if r, ok := intValue(node.GoValue); ok {
			return compareInts(node.Compare, l, r), nil
		}
	} else if l, ok := value.(string); ok {
		if r, ok := node.GoValue.(string); ok {
			return compareStrings(node.Compare, l, r), nil
		}
	}

	return false, &TypeMismatchError{Attribute: node.Attribute, Operator: node.Compare}
}

func compareInts(op rule.CompareOp, left, right int64) bool {
	switch op {
	case rule.Greater:
		return left > right
	case rule.GreaterEqual:
		return left >= right
	case rule.Less:
		return left < right
	case rule.LessEqual:
		return left <= right
	}

	return false
}

func compareStrings(op rule.CompareOp, left, right string) bool {
	switch op {
	case rule.Greater:
		return left > right
	case rule.GreaterEqual:
		return left >= right
	case rule.Less:
		return left < right
	case rule.LessEqual:
		return left <= right
	}

	return false
}

func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}

	return 0, false
}
