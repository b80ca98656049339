package ir

import (
	"errors"
	"testing"
)

func inventoryDoc() *Node {
	doc := StructNode()
	item := doc.Field("items").Elem(0)
	*item.Field("name").MutString() = "sword"
	*item.Field("cost").MutInteger() = 10
	return doc
}

func TestResolvePointer(t *testing.T) {
	doc := inventoryDoc()
	tests := []struct {
		pointer string
		want    string // expected String() payload, "" means expect failure
		fails   bool
	}{
		{pointer: "/items/0/name", want: "sword"},
		{pointer: "", want: ""}, // resolves to doc itself
		{pointer: "/items/5/name", fails: true},
		{pointer: "/items/x", fails: true},
		{pointer: "/missing", fails: true},
		{pointer: "/items/0/name/deeper", fails: true},
		{pointer: "no-leading-slash", fails: true},
	}
	for _, tt := range tests {
		t.Run(tt.pointer, func(t *testing.T) {
			got, err := doc.ResolvePointer(tt.pointer)
			if tt.fails {
				if err == nil {
					t.Fatalf("expected failure")
				}
				if !errors.Is(err, ErrPointer) {
					t.Errorf("error %v does not wrap ErrPointer", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tt.pointer == "" {
				if got != doc {
					t.Errorf("empty pointer did not resolve to the node itself")
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("resolved %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestResolvePointerMut(t *testing.T) {
	doc := inventoryDoc()

	// auto-creates intermediate struct children
	node, err := doc.ResolvePointerMut("/meta/author/name")
	if err != nil {
		t.Fatalf("mut resolution failed: %v", err)
	}
	*node.MutString() = "me"
	got, err := doc.ResolvePointer("/meta/author/name")
	if err != nil || got.String() != "me" {
		t.Errorf("auto-created path not readable: %v", err)
	}

	// never auto-creates vector slots
	if _, err := doc.ResolvePointerMut("/items/5"); err == nil {
		t.Errorf("expected out-of-range vector index to fail")
	}
}
