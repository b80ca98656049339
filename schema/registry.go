package schema

import (
	"fmt"
	"sync"

	"github.com/jeyms233/jsontree/ir"
)

// Registry resolves schema URIs to schema documents. It is the one
// shared, read-mostly object in this package: registration happens at
// startup, resolution many times after, possibly from several readers.
type Registry struct {
	mu      sync.RWMutex
	scheme  string
	schemas map[string]*ir.Node
}

// NewRegistry creates a registry answering URIs of the given scheme
// ("game" answers "game:creature" and so on).
func NewRegistry(scheme string) *Registry {
	return &Registry{
		scheme:  scheme,
		schemas: map[string]*ir.Node{},
	}
}

// Register adds a schema document under the given name.
func (r *Registry) Register(name string, doc *ir.Node) error {
	if name == "" {
		return fmt.Errorf("%w: schema must have a name", ErrSchemaURI)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("%w: schema %q already registered", ErrSchemaURI, name)
	}
	r.schemas[name] = doc
	return nil
}

// Resolve returns the (sub-)schema addressed by a scheme:name#pointer
// URI. The returned node is shared; callers must not mutate it.
func (r *Registry) Resolve(uri string) (*ir.Node, error) {
	ref, err := ParseRef(uri)
	if err != nil {
		return nil, err
	}
	if ref.Scheme != r.scheme {
		return nil, fmt.Errorf("%w: unknown scheme in %q, want %q", ErrSchemaURI, uri, r.scheme)
	}
	r.mu.RLock()
	doc, ok := r.schemas[ref.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: schema %q not found", ErrSchemaURI, ref.Name)
	}
	if ref.Pointer == "" {
		return doc, nil
	}
	sub, err := doc.ResolvePointer(ref.Pointer)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSchemaURI, uri, err)
	}
	return sub, nil
}

// Names returns the registered schema names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	return names
}
