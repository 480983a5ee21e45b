package rule

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	logicalKeywords     = regexp.MustCompile(`\b(AND|OR)\b`)
	comparisonOperators = regexp.MustCompile(`==|!=|>=|<=|>|<`)
)

// Compile turns rule text like "age > 30 AND department == sales" into an
// expression tree.
//
// The grammar is a flat left-to-right chain of comparisons joined by AND and
// OR, with no parentheses and no precedence: "a > 1 AND b < 2 OR c == 3"
// reduces as ((a > 1) AND (b < 2)) OR (c == 3). Attribute names are stored
// lower-cased; literal values are kept exactly as written. A literal composed
// only of decimal digits is typed as an integer here, at compile time;
// anything else stays a string.
func Compile(ruleText string) (*Node, error) {
	text := strings.TrimSpace(ruleText)
	if text == "" {
		return nil, ErrEmptyRule
	}

	st := stack[*Node]{}
	var pending LogicalOp

	for _, tk := range tokenize(text) {
		if tk == string(And) || tk == string(Or) {
			if pending != "" || len(st) == 0 {
				return nil, &InsufficientOperandsError{Operator: LogicalOp(tk)}
			}

			pending = LogicalOp(tk)
			continue
		}

		leaves, err := comparisons(tk)
		if err != nil {
			return nil, err
		}

		for _, n := range leaves {
			st.push(n)

			// A logical operator connects the two most recently built
			// sub-trees as soon as its right-hand side is available.
			if pending != "" {
				right := st.pop()
				left := st.pop()
				st.push(&Node{Type: Logical, Logical: pending, Left: left, Right: right})
				pending = ""
			}
		}
	}

	if pending != "" {
		return nil, &InsufficientOperandsError{Operator: pending}
	}

	switch len(st) {
	case 1:
		return st.pop(), nil
	case 0:
		return nil, ErrNoExpression
	default:
		return nil, &UnreducedStackError{Pending: len(st)}
	}
}

// Combine compiles every rule independently and joins the resulting trees
// with the given operator, associating left to right:
// Combine([r1, r2, r3], And) yields AND(AND(r1, r2), r3).
func Combine(rules []string, operator LogicalOp) (*Node, error) {
	if operator != And && operator != Or {
		return nil, &UnsupportedCombinatorError{Operator: operator}
	}

	nodes := make([]*Node, 0, len(rules))
	for _, r := range rules {
		n, err := Compile(r)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
	}

	if len(nodes) == 0 {
		return nil, ErrNoExpression
	}

	combined := nodes[0]
	for _, n := range nodes[1:] {
		combined = &Node{Type: Logical, Logical: operator, Left: combined, Right: n}
	}

	return combined, nil
}

// tokenize splits the trimmed rule text on whole-word AND/OR keywords,
// keeping the keywords as tokens of their own and dropping empty fragments.
func tokenize(text string) []string {
	tokens := []string{}
	last := 0

	for _, m := range logicalKeywords.FindAllStringIndex(text, -1) {
		if frag := strings.TrimSpace(text[last:m[0]]); frag != "" {
			tokens = append(tokens, frag)
		}

		tokens = append(tokens, text[m[0]:m[1]])
		last = m[1]
	}

	if frag := strings.TrimSpace(text[last:]); frag != "" {
		tokens = append(tokens, frag)
	}

	return tokens
}

// comparisons parses one fragment between logical keywords. A fragment
// usually holds a single "attribute op literal" comparison, but nothing in
// the tokenization stops a rule author from writing two comparisons with no
// joining keyword; those still parse here, one leaf each, so that Compile
// reports the unreduced stack instead of a misleading syntax error.
func comparisons(fragment string) ([]*Node, error) {
	ops := comparisonOperators.FindAllStringIndex(fragment, -1)
	if len(ops) == 0 {
		return nil, &MalformedComparisonError{Fragment: fragment}
	}

	if len(ops) == 1 {
		m := ops[0]

		n, err := leaf(fragment, fragment[:m[0]], CompareOp(fragment[m[0]:m[1]]), fragment[m[1]:])
		if err != nil {
			return nil, err
		}

		return []*Node{n}, nil
	}

	// More than one operator: every segment between two operators must split
	// into exactly the previous literal and the next attribute, otherwise the
	// fragment has no sensible comparison structure (e.g. "age >> 30").
	nodes := make([]*Node, 0, len(ops))
	attribute := fragment[:ops[0][0]]

	for i, m := range ops {
		op := CompareOp(fragment[m[0]:m[1]])

		var literal, next string
		if i == len(ops)-1 {
			literal = fragment[m[1]:]
		} else {
			between := strings.Fields(fragment[m[1]:ops[i+1][0]])
			if len(between) != 2 {
				return nil, &MalformedComparisonError{Fragment: fragment}
			}

			literal, next = between[0], between[1]
		}

		n, err := leaf(fragment, attribute, op, literal)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
		attribute = next
	}

	return nodes, nil
}

func leaf(fragment, attribute string, op CompareOp, literal string) (*Node, error) {
	literal = strings.TrimSpace(literal)

	value, err := literalValue(literal)
	if err != nil {
		return nil, &MalformedComparisonError{Fragment: fragment}
	}

	return &Node{
		Type:      Comparison,
		Attribute: strings.ToLower(strings.TrimSpace(attribute)),
		Compare:   op,
		StrValue:  literal,
		GoValue:   value,
	}, nil
}

// literalValue fixes the literal's type once, at compile time: digits-only
// text becomes an integer, everything else stays a string.
func literalValue(literal string) (any, error) {
	if !isDigits(literal) {
		return literal, nil
	}

	return strconv.ParseInt(literal, 10, 64)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
