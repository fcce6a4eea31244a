package htmldiff

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func TestOperations(t *testing.T) {
	tests := []struct {
		name          string
		before, after []string
		want          []DiffOp
	}{
		{
			name:   "both empty",
			before: nil,
			after:  nil,
			want:   nil,
		},
		{
			name:   "before empty",
			before: nil,
			after:  []string{"x", "y"},
			want: []DiffOp{
				{Type: Insert, AStart: 0, AEnd: 0, BStart: 0, BEnd: 2},
			},
		},
		{
			name:   "after empty",
			before: []string{"x", "y"},
			after:  nil,
			want: []DiffOp{
				{Type: Delete, AStart: 0, AEnd: 2, BStart: 0, BEnd: 0},
			},
		},
		{
			name:   "equal",
			before: []string{"a", "b"},
			after:  []string{"a", "b"},
			want: []DiffOp{
				{Type: Equal, AStart: 0, AEnd: 2, BStart: 0, BEnd: 2},
			},
		},
		{
			name:   "insert in the middle",
			before: []string{"Hello", " ", "World"},
			after:  []string{"Hello", " ", "New", " ", "World"},
			want: []DiffOp{
				{Type: Equal, AStart: 0, AEnd: 2, BStart: 0, BEnd: 2},
				{Type: Insert, AStart: 2, AEnd: 2, BStart: 2, BEnd: 4},
				{Type: Equal, AStart: 2, AEnd: 3, BStart: 4, BEnd: 5},
			},
		},
		{
			name:   "delete at the end",
			before: []string{"a", "b", "c"},
			after:  []string{"a"},
			want: []DiffOp{
				{Type: Equal, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
				{Type: Delete, AStart: 1, AEnd: 3, BStart: 1, BEnd: 1},
			},
		},
		{
			name:   "replace on both sides",
			before: []string{"a", " ", "b", " ", "c"},
			after:  []string{"x", " ", "b", " ", "y"},
			want: []DiffOp{
				{Type: Replace, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
				{Type: Equal, AStart: 1, AEnd: 4, BStart: 1, BEnd: 4},
				{Type: Replace, AStart: 4, AEnd: 5, BStart: 4, BEnd: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Operations(tt.before, tt.after)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Operations() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// checkCoverage fails t unless ops cover before and after exactly once, in
// order, with every operation shaped according to its type.
func checkCoverage(t *rapid.T, ops []DiffOp, before, after []string) {
	i, j := 0, 0
	for k, op := range ops {
		if op.AStart != i || op.BStart != j {
			t.Fatalf("op %d %+v does not start at (%d, %d)", k, op, i, j)
		}
		aLen, bLen := op.AEnd-op.AStart, op.BEnd-op.BStart

		switch op.Type {
		case Equal:
			if aLen <= 0 || aLen != bLen {
				t.Fatalf("op %d %+v has unequal or empty ranges", k, op)
			}
			if !reflect.DeepEqual(before[op.AStart:op.AEnd], after[op.BStart:op.BEnd]) {
				t.Fatalf("op %d %+v spans different tokens", k, op)
			}
		case Insert:
			if aLen != 0 || bLen <= 0 {
				t.Fatalf("op %d %+v is not a pure insertion", k, op)
			}
		case Delete:
			if aLen <= 0 || bLen != 0 {
				t.Fatalf("op %d %+v is not a pure deletion", k, op)
			}
		case Replace:
			if aLen <= 0 || bLen <= 0 {
				t.Fatalf("op %d %+v has an empty side", k, op)
			}
		default:
			t.Fatalf("op %d has unknown type %v", k, op.Type)
		}

		i, j = op.AEnd, op.BEnd
	}

	if i != len(before) || j != len(after) {
		t.Fatalf("ops end at (%d, %d), want (%d, %d)", i, j, len(before), len(after))
	}
}

func TestOperations_CoverageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		before := tokenSeq().Draw(t, "before")
		after := tokenSeq().Draw(t, "after")

		checkCoverage(t, Operations(before, after), before, after)
	})
}

func TestOperations_TextCoverageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		before := Tokenize(rapid.String().Draw(t, "before"))
		after := Tokenize(rapid.String().Draw(t, "after"))

		checkCoverage(t, Operations(before, after), before, after)
	})
}
