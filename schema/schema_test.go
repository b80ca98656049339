package schema

import (
	"errors"
	"strings"
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

const creatureSchema = `{
	"type": "object",
	"required": ["name", "hp", "speed"],
	"additionalProperties": false,
	"properties": {
		"name":  {"type": "string"},
		"hp":    {"type": "integer", "default": 10, "constraint": "value > 0"},
		"speed": {"type": "number", "default": 5.0},
		"size":  {"type": "string", "enum": ["small", "medium", "large"], "default": "medium"},
		"tags":  {"type": "array", "items": {"type": "string"}},
		"home":  {"$ref": "game:terrain"}
	}
}`

const terrainSchema = `{
	"type": "object",
	"required": ["kind"],
	"properties": {
		"kind": {"type": "string", "default": "grass"}
	}
}`

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry("game")
	if err := reg.Register("creature", mustParse(t, creatureSchema)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("terrain", mustParse(t, terrainSchema)); err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestParseRef(t *testing.T) {
	ref, err := ParseRef("game:creature#/properties/hp")
	if err != nil {
		t.Fatal(err)
	}
	if ref.Scheme != "game" || ref.Name != "creature" || ref.Pointer != "/properties/hp" {
		t.Errorf("ParseRef = %+v", ref)
	}
	for _, bad := range []string{"", "creature", ":x", "game:"} {
		if _, err := ParseRef(bad); err == nil {
			t.Errorf("ParseRef(%q): expected error", bad)
		}
	}
}

func TestRegistryResolve(t *testing.T) {
	reg := testRegistry(t)

	sub, err := reg.Resolve("game:creature#/properties/hp")
	if err != nil {
		t.Fatal(err)
	}
	if got := sub.GetField("type").String(); got != "integer" {
		t.Errorf("sub-schema type = %q", got)
	}

	if _, err := reg.Resolve("game:unknown"); !errors.Is(err, ErrSchemaURI) {
		t.Errorf("unknown schema: %v", err)
	}
	if _, err := reg.Resolve("other:creature"); !errors.Is(err, ErrSchemaURI) {
		t.Errorf("wrong scheme: %v", err)
	}
	if err := reg.Register("creature", ir.StructNode()); !errors.Is(err, ErrSchemaURI) {
		t.Errorf("duplicate registration: %v", err)
	}
}

func TestValidate(t *testing.T) {
	reg := testRegistry(t)
	tests := []struct {
		name string
		doc  string
		want []string // substrings of expected violations, empty means compliant
	}{
		{
			name: "compliant",
			doc:  `{"name":"imp","hp":10,"speed":5.0,"size":"small","tags":["a"],"home":{"kind":"lava"}}`,
		},
		{
			name: "missing required",
			doc:  `{"name":"imp","hp":10}`,
			want: []string{`missing required key "speed"`},
		},
		{
			name: "wrong type",
			doc:  `{"name":7,"hp":10,"speed":5.0}`,
			want: []string{`/name: node is Integer, schema wants string`},
		},
		{
			name: "enum violation",
			doc:  `{"name":"imp","hp":10,"speed":5.0,"size":"tiny"}`,
			want: []string{`/size: value "tiny" not in enum`},
		},
		{
			name: "constraint violation",
			doc:  `{"name":"imp","hp":0,"speed":5.0}`,
			want: []string{`constraint "value > 0" not satisfied`},
		},
		{
			name: "unknown key",
			doc:  `{"name":"imp","hp":10,"speed":5.0,"wat":1}`,
			want: []string{`key "wat" not allowed`},
		},
		{
			name: "bad array item",
			doc:  `{"name":"imp","hp":10,"speed":5.0,"tags":[1]}`,
			want: []string{`/tags/0: node is Integer, schema wants string`},
		},
		{
			name: "ref violation",
			doc:  `{"name":"imp","hp":10,"speed":5.0,"home":{}}`,
			want: []string{`/home: missing required key "kind"`},
		},
		{
			name: "multiple violations reported",
			doc:  `{"hp":0,"speed":"fast"}`,
			want: []string{
				`missing required key "name"`,
				`not satisfied`,
				`/speed: node is String, schema wants number`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := Validate(reg, mustParse(t, tt.doc), "game:creature", "creatures/imp")
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if len(tt.want) == 0 && len(violations) != 0 {
				t.Fatalf("unexpected violations: %v", violations)
			}
			for _, want := range tt.want {
				found := false
				for _, v := range violations {
					if v.DataName != "creatures/imp" {
						t.Errorf("violation lost its data name: %v", v)
					}
					if strings.Contains(v.String(), want) {
						found = true
					}
				}
				if !found {
					t.Errorf("no violation containing %q in %v", want, violations)
				}
			}
		})
	}
}

func TestValidateUnresolvedSchema(t *testing.T) {
	reg := testRegistry(t)
	if _, err := Validate(reg, ir.StructNode(), "game:nope", "x"); !errors.Is(err, ErrSchemaURI) {
		t.Errorf("unresolved schema: %v", err)
	}
}

func TestNormalizeUnwalkableSchema(t *testing.T) {
	reg := NewRegistry("game")
	if err := reg.Register("broken", ir.StringNode("nope")); err != nil {
		t.Fatal(err)
	}
	if err := Minimize(reg, ir.StructNode(), "game:broken"); !errors.Is(err, ErrNotMinimizable) {
		t.Errorf("Minimize: %v", err)
	}
	if err := Maximize(reg, ir.StructNode(), "game:broken"); !errors.Is(err, ErrNotMinimizable) {
		t.Errorf("Maximize: %v", err)
	}
}

func TestMinimize(t *testing.T) {
	reg := testRegistry(t)
	doc := mustParse(t, `{"name":"imp","hp":10,"speed":7.5,"home":{"kind":"grass"}}`)
	if err := Minimize(reg, doc, "game:creature"); err != nil {
		t.Fatal(err)
	}
	// hp equals its default and is stripped; speed differs and stays;
	// home's kind equals the terrain default
	want := mustParse(t, `{"name":"imp","speed":7.5,"home":{}}`)
	if !ir.Equal(doc, want) {
		t.Errorf("got %s, want %s", encode.MustString(doc), encode.MustString(want))
	}
}

func TestMaximize(t *testing.T) {
	reg := testRegistry(t)
	doc := mustParse(t, `{"name":"imp"}`)
	if err := Maximize(reg, doc, "game:creature"); err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"name":"imp","hp":10,"speed":5.0}`)
	if !ir.Equal(doc, want) {
		t.Errorf("got %s, want %s", encode.MustString(doc), encode.MustString(want))
	}
}

func TestMinimizeMaximizeRoundTrip(t *testing.T) {
	reg := testRegistry(t)
	docs := []string{
		`{"name":"imp","hp":10,"speed":5.0}`,
		`{"name":"imp","hp":12,"speed":5.0,"home":{"kind":"grass"}}`,
		`{"name":"imp","hp":10,"speed":9.0,"tags":["x"]}`,
	}
	for _, s := range docs {
		doc := mustParse(t, s)
		orig := doc.Clone()
		if err := Minimize(reg, doc, "game:creature"); err != nil {
			t.Fatal(err)
		}
		if err := Maximize(reg, doc, "game:creature"); err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(doc, orig) {
			t.Errorf("round trip lost data: got %s, want %s",
				encode.MustString(doc), encode.MustString(orig))
		}
	}
}
