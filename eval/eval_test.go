package eval

import (
	"errors"
	"testing"

	"rulegate/rule"
)

func compile(t *testing.T, text string) *rule.Node {
	t.Helper()

	n, err := rule.Compile(text)
	if err != nil {
		t.Fatal(err)
	}

	return n
}

func Test_Evaluate(t *testing.T) {
	tests := []struct {
		name   string
		rule   string
		record map[string]any
		want   bool
	}{
		{
			name:   "contradictory AND with age below both bounds",
			rule:   "age > 30 AND age < 20",
			record: map[string]any{"age": 25},
			want:   false,
		},
		{
			name:   "contradictory AND with age above both bounds",
			rule:   "age > 30 AND age < 20",
			record: map[string]any{"age": 35},
			want:   false,
		},
		{
			name:   "OR with true left clause",
			rule:   "age > 30 OR income > 50000",
			record: map[string]any{"age": 40, "income": 1000},
			want:   true,
		},
		{
			name:   "OR with only the right clause true",
			rule:   "age > 30 OR income > 50000",
			record: map[string]any{"age": 20, "income": 60000},
			want:   true,
		},
		{
			name:   "string equality",
			rule:   "department == sales",
			record: map[string]any{"department": "sales"},
			want:   true,
		},
		{
			name:   "string equality is case-sensitive on the record value",
			rule:   "department == sales",
			record: map[string]any{"department": "Sales"},
			want:   false,
		},
		{
			name:   "string inequality",
			rule:   "department != marketing",
			record: map[string]any{"department": "sales"},
			want:   true,
		},
		{
			name:   "equality across kinds is simply false",
			rule:   "age == sales",
			record: map[string]any{"age": 30},
			want:   false,
		},
		{
			name:   "inequality across kinds is simply true",
			rule:   "age != sales",
			record: map[string]any{"age": 30},
			want:   true,
		},
		{
			name:   "string ordering is byte-wise",
			rule:   "department > marketing",
			record: map[string]any{"department": "sales"},
			want:   true,
		},
		{
			name:   "boundary of greater-or-equal",
			rule:   "income >= 50000",
			record: map[string]any{"income": 50000},
			want:   true,
		},
		{
			name:   "boundary of less-or-equal",
			rule:   "spend <= 100",
			record: map[string]any{"spend": 101},
			want:   false,
		},
		{
			name:   "no precedence: AND then OR, left to right",
			rule:   "age > 30 AND age < 20 OR department == sales",
			record: map[string]any{"age": 25, "department": "sales"},
			want:   true,
		},
		{
			name:   "int64 record values compare like ints",
			rule:   "age > 30",
			record: map[string]any{"age": int64(31)},
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(compile(t, tt.rule), tt.record)
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Evaluate_NilTree(t *testing.T) {
	got, err := Evaluate(nil, map[string]any{"age": 30})
	if err != nil {
		t.Fatal(err)
	}

	if got {
		t.Error("Evaluate(nil) = true, want false")
	}
}

func Test_Evaluate_ShortCircuit(t *testing.T) {
	// The right-hand attribute is absent from the record; if the evaluator
	// didn't short-circuit it would fail with MissingAttributeError.
	t.Run("AND stops on a false left clause", func(t *testing.T) {
		got, err := Evaluate(compile(t, "age > 30 AND income > 50000"), map[string]any{"age": 20})
		if err != nil {
			t.Fatal(err)
		}

		if got {
			t.Error("Evaluate() = true, want false")
		}
	})

	t.Run("OR stops on a true left clause", func(t *testing.T) {
		got, err := Evaluate(compile(t, "age > 30 OR income > 50000"), map[string]any{"age": 40})
		if err != nil {
			t.Fatal(err)
		}

		if !got {
			t.Error("Evaluate() = false, want true")
		}
	})
}

func Test_Evaluate_Errors(t *testing.T) {
	t.Run("missing attribute", func(t *testing.T) {
		_, err := Evaluate(compile(t, "salary > 1000"), map[string]any{"age": 30})

		var missing *MissingAttributeError
		if !errors.As(err, &missing) {
			t.Fatalf("Evaluate() error = %v, want MissingAttributeError", err)
		}

		if missing.Attribute != "salary" {
			t.Errorf("Attribute = %q, want %q", missing.Attribute, "salary")
		}
	})

	t.Run("ordering across kinds", func(t *testing.T) {
		_, err := Evaluate(compile(t, "age > sales"), map[string]any{"age": 30})

		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Evaluate() error = %v, want TypeMismatchError", err)
		}

		if mismatch.Attribute != "age" || mismatch.Operator != rule.Greater {
			t.Errorf("got %+v, want attribute 'age' and operator '>'", mismatch)
		}
	})

	t.Run("ordering against a non-comparable record value", func(t *testing.T) {
		_, err := Evaluate(compile(t, "flag > 1"), map[string]any{"flag": true})

		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Evaluate() error = %v, want TypeMismatchError", err)
		}
	})

	t.Run("unknown comparison operator on a hand-built leaf", func(t *testing.T) {
		leaf := &rule.Node{Type: rule.Comparison, Attribute: "age", Compare: rule.CompareOp("~="), GoValue: int64(1)}

		_, err := Evaluate(leaf, map[string]any{"age": 30})

		var unsupported *UnsupportedOperatorError
		if !errors.As(err, &unsupported) {
			t.Fatalf("Evaluate() error = %v, want UnsupportedOperatorError", err)
		}
	})

	t.Run("unknown logical operator on a hand-built node", func(t *testing.T) {
		node := &rule.Node{
			Type:    rule.Logical,
			Logical: rule.LogicalOp("XOR"),
			Left:    &rule.Node{Type: rule.Comparison, Attribute: "age", Compare: rule.Greater, GoValue: int64(1)},
			Right:   &rule.Node{Type: rule.Comparison, Attribute: "age", Compare: rule.Less, GoValue: int64(9)},
		}

		_, err := Evaluate(node, map[string]any{"age": 5})

		var unsupported *UnsupportedLogicalOperatorError
		if !errors.As(err, &unsupported) {
			t.Fatalf("Evaluate() error = %v, want UnsupportedLogicalOperatorError", err)
		}
	})

	t.Run("unknown node tag", func(t *testing.T) {
		_, err := Evaluate(&rule.Node{Type: rule.NodeType("group")}, map[string]any{})

		var unsupported *UnsupportedLogicalOperatorError
		if !errors.As(err, &unsupported) {
			t.Fatalf("Evaluate() error = %v, want UnsupportedLogicalOperatorError", err)
		}
	})

	t.Run("errors propagate through logical nodes", func(t *testing.T) {
		_, err := Evaluate(compile(t, "age > 30 AND salary > 1000"), map[string]any{"age": 40})

		var missing *MissingAttributeError
		if !errors.As(err, &missing) {
			t.Fatalf("Evaluate() error = %v, want MissingAttributeError", err)
		}
	})
}
