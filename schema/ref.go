package schema

import (
	"fmt"
	"strings"
)

// Ref is a parsed schema URI: scheme:name#pointer, pointer optional.
type Ref struct {
	Scheme  string
	Name    string
	Pointer string
}

func (r Ref) String() string {
	if r.Pointer == "" {
		return r.Scheme + ":" + r.Name
	}
	return r.Scheme + ":" + r.Name + "#" + r.Pointer
}

func ParseRef(uri string) (Ref, error) {
	scheme, rest, ok := strings.Cut(uri, ":")
	if !ok || scheme == "" {
		return Ref{}, fmt.Errorf("%w: %q has no scheme", ErrSchemaURI, uri)
	}
	name, pointer, _ := strings.Cut(rest, "#")
	if name == "" {
		return Ref{}, fmt.Errorf("%w: %q has no schema name", ErrSchemaURI, uri)
	}
	if pointer != "" && !strings.HasPrefix(pointer, "/") {
		pointer = "/" + pointer
	}
	return Ref{Scheme: scheme, Name: name, Pointer: pointer}, nil
}
