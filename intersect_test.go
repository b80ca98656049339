package jsontree

import (
	"testing"

	"github.com/jeyms233/jsontree/ir"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name       string
		a, b       string
		pruneEmpty bool
		want       string
	}{
		{
			name:       "differing key pruned",
			a:          `{"a":1,"b":2}`,
			b:          `{"a":1,"b":3}`,
			pruneEmpty: true,
			want:       `{"a":1}`,
		},
		{
			name: "differing key kept as null",
			a:    `{"a":1,"b":2}`,
			b:    `{"a":1,"b":3}`,
			want: `{"a":1,"b":null}`,
		},
		{
			name:       "keys unique to one side dropped",
			a:          `{"a":1,"b":2}`,
			b:          `{"a":1,"c":3}`,
			pruneEmpty: true,
			want:       `{"a":1}`,
		},
		{
			name:       "nested structs recurse",
			a:          `{"s":{"x":1,"y":2}}`,
			b:          `{"s":{"x":1,"y":9}}`,
			pruneEmpty: true,
			want:       `{"s":{"x":1}}`,
		},
		{
			name:       "different types yield null",
			a:          `{"a":[1]}`,
			b:          `{"a":{"x":1}}`,
			pruneEmpty: true,
			want:       `{}`,
		},
		{
			name:       "equal vectors shared",
			a:          `[1,2,3]`,
			b:          `[1,2,3]`,
			pruneEmpty: true,
			want:       `[1,2,3]`,
		},
		{
			name:       "unequal vectors yield null",
			a:          `[1,2]`,
			b:          `[1,3]`,
			pruneEmpty: true,
			want:       `null`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustParse(t, tt.a), mustParse(t, tt.b)
			got := Intersect(a, b, tt.pruneEmpty)
			checkTree(t, got, mustParse(t, tt.want))
			// commutativity
			checkTree(t, Intersect(b, a, tt.pruneEmpty), got)
		})
	}
}

func TestIntersectIdempotent(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":{"c":[1,2],"d":"x"}}`)
	checkTree(t, Intersect(a, a, true), a)
}

func TestIntersectNumericWidening(t *testing.T) {
	got := Intersect(mustParse(t, `{"a":1}`), mustParse(t, `{"a":1.0}`), true)
	checkTree(t, got, mustParse(t, `{"a":1}`))
}

func TestIntersectAll(t *testing.T) {
	nodes := []*ir.Node{
		mustParse(t, `{"a":1,"b":2,"c":3}`),
		mustParse(t, `{"a":1,"b":3,"c":3}`),
		mustParse(t, `{"a":1,"c":3,"d":4}`),
	}
	got := IntersectAll(nodes, true)
	checkTree(t, got, mustParse(t, `{"a":1,"c":3}`))

	if !IntersectAll(nil, true).IsNull() {
		t.Errorf("empty input did not yield null")
	}
}
