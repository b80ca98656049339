package jsontree

import (
	"testing"

	"github.com/jeyms233/jsontree/encode"
	"github.com/jeyms233/jsontree/ir"
	"github.com/jeyms233/jsontree/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.JSON([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

func checkTree(t *testing.T, got, want *ir.Node) {
	t.Helper()
	if !ir.Equal(got, want) {
		t.Errorf("got\n%s\nwant\n%s", encode.MustString(got), encode.MustString(want))
	}
}

func TestMergeTables(t *testing.T) {
	tests := []struct {
		name   string
		dest   string
		source string
		opts   []MergeOption
		want   string
	}{
		{
			name:   "null deletes",
			dest:   `{"a":1,"b":2}`,
			source: `{"b":null,"c":3}`,
			want:   `{"a":1,"c":3}`,
		},
		{
			name:   "ignoreOverride keeps tombstoned entries",
			dest:   `{"a":1,"b":2}`,
			source: `{"b":null,"c":3}`,
			opts:   []MergeOption{IgnoreOverride()},
			want:   `{"a":1,"b":2,"c":3}`,
		},
		{
			name:   "structs merge per key",
			dest:   `{"a":{"x":1,"y":2}}`,
			source: `{"a":{"y":3,"z":4}}`,
			want:   `{"a":{"x":1,"y":3,"z":4}}`,
		},
		{
			name:   "vectors merge positionally",
			dest:   `[{"a":1},{"b":2}]`,
			source: `[{"a":9}]`,
			want:   `[{"a":9},{"b":2}]`,
		},
		{
			name:   "longer source extends dest",
			dest:   `[1]`,
			source: `[2,3,4]`,
			want:   `[2,3,4]`,
		},
		{
			name:   "scalar replaces wholesale",
			dest:   `{"a":{"deep":true}}`,
			source: `{"a":5}`,
			want:   `{"a":5}`,
		},
		{
			name:   "type mismatch replaces wholesale",
			dest:   `{"a":[1,2]}`,
			source: `{"a":{"x":1}}`,
			want:   `{"a":{"x":1}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := mustParse(t, tt.dest)
			source := mustParse(t, tt.source)
			Merge(dest, source, tt.opts...)
			checkTree(t, dest, mustParse(t, tt.want))
			if !source.IsNull() {
				t.Errorf("source not consumed, still %s", source.Type())
			}
		})
	}
}

func TestMergeNullTree(t *testing.T) {
	a := mustParse(t, `{"a":1}`)

	kept := a.Clone()
	Merge(kept, ir.Null(), IgnoreOverride())
	checkTree(t, kept, a)

	cleared := a.Clone()
	Merge(cleared, ir.Null())
	if !cleared.IsNull() {
		t.Errorf("null source did not clear dest, got %s", cleared.Type())
	}
}

func TestMergeOverrideFlag(t *testing.T) {
	dest := mustParse(t, `{"a":{"x":1,"y":2}}`)
	source := mustParse(t, `{"a":{"y":3}}`)
	source.GetField("a").SetFlag(ir.FlagOverride)

	Merge(dest, source)
	checkTree(t, dest, mustParse(t, `{"a":{"y":3}}`))

	// ignoreOverride deep-merges a flagged subtree like any other
	dest = mustParse(t, `{"a":{"x":1,"y":2}}`)
	source = mustParse(t, `{"a":{"y":3}}`)
	source.GetField("a").SetFlag(ir.FlagOverride)
	Merge(dest, source, IgnoreOverride())
	checkTree(t, dest, mustParse(t, `{"a":{"x":1,"y":3}}`))
}

func TestMergeCopyPreservesSource(t *testing.T) {
	dest := mustParse(t, `{"a":1}`)
	source := mustParse(t, `{"b":2}`)
	MergeCopy(dest, source)
	checkTree(t, dest, mustParse(t, `{"a":1,"b":2}`))
	checkTree(t, source, mustParse(t, `{"b":2}`))
}

func TestMergeCopyMeta(t *testing.T) {
	dest := mustParse(t, `{"a":1}`)
	dest.SetMeta("base", true)
	source := mustParse(t, `{"a":2}`)
	source.SetMeta("mod", true)

	MergeCopy(dest, source, CopyMeta())
	if got := dest.GetField("a").Meta; got != "mod" {
		t.Errorf("meta = %q, want %q", got, "mod")
	}

	dest = mustParse(t, `{"a":1}`)
	dest.SetMeta("base", true)
	MergeCopy(dest, source)
	if got := dest.GetField("a").Meta; got != "base" {
		t.Errorf("meta = %q, want %q without CopyMeta", got, "base")
	}
}

func TestInherit(t *testing.T) {
	base := mustParse(t, `{"hp":10,"speed":5,"abilities":{"fly":true}}`)
	descendant := mustParse(t, `{"hp":12,"speed":null}`)

	Inherit(descendant, base)
	checkTree(t, descendant, mustParse(t, `{"hp":12,"abilities":{"fly":true}}`))
	// base is an immutable input
	checkTree(t, base, mustParse(t, `{"hp":10,"speed":5,"abilities":{"fly":true}}`))
}
