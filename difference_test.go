package jsontree

import (
	"testing"
)

func TestDifference(t *testing.T) {
	tests := []struct {
		name string
		node string
		base string
		want string
	}{
		{
			name: "added key",
			node: `{"a":1,"b":2}`,
			base: `{"a":1}`,
			want: `{"b":2}`,
		},
		{
			name: "removed key becomes tombstone",
			node: `{"a":1}`,
			base: `{"a":1,"b":2}`,
			want: `{"b":null}`,
		},
		{
			name: "equal keys omitted",
			node: `{"a":1,"b":2}`,
			base: `{"a":1,"b":2}`,
			want: `{}`,
		},
		{
			name: "nested difference",
			node: `{"s":{"x":1,"y":3}}`,
			base: `{"s":{"x":1,"y":2}}`,
			want: `{"s":{"y":3}}`,
		},
		{
			name: "changed type replaces",
			node: `{"a":{"x":1}}`,
			base: `{"a":[1,2]}`,
			want: `{"a":{"x":1}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, base := mustParse(t, tt.node), mustParse(t, tt.base)
			diff := Difference(node, base)
			checkTree(t, diff, mustParse(t, tt.want))
		})
	}
}

// merging the difference into a copy of base must reproduce node
func TestDifferenceMergeRoundTrip(t *testing.T) {
	pairs := []struct {
		name string
		node string
		base string
	}{
		{"disjoint", `{"a":1}`, `{"b":2}`},
		{"overlapping", `{"a":1,"b":3}`, `{"a":1,"b":2,"c":4}`},
		{"nested", `{"s":{"x":1,"v":[1,2,3]}}`, `{"s":{"x":2,"v":[1,2,3],"gone":true}}`},
		{"vector replaced", `{"v":[4,5]}`, `{"v":[1,2,3]}`},
		{"identical", `{"a":{"b":1}}`, `{"a":{"b":1}}`},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			node, base := mustParse(t, tt.node), mustParse(t, tt.base)
			diff := Difference(node, base)
			rebuilt := base.Clone()
			Merge(rebuilt, diff)
			checkTree(t, rebuilt, node)
		})
	}
}
