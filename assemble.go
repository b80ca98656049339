package jsontree

import (
	"fmt"

	"github.com/jeyms233/jsontree/debug"
	"github.com/jeyms233/jsontree/ir"
	"github.com/jeyms233/jsontree/parse"
)

// FragmentSource retrieves named fragment bytes. Retrieval itself —
// filesystem layout, mod ordering, archives — is the caller's concern;
// assembly only defines the merge-order contract.
type FragmentSource interface {
	// Load returns the bytes of the named fragment.
	Load(name string) ([]byte, error)

	// LoadAll returns every fragment sharing the logical name, in
	// override order (earliest base first).
	LoadAll(name string) ([][]byte, error)
}

// Assemble parses each named fragment and merges them in order, later
// fragments overriding earlier ones. A fragment that fails to load or
// parse aborts with an error naming it.
func Assemble(src FragmentSource, names ...string) (*ir.Node, error) {
	res := ir.Null()
	for _, name := range names {
		data, err := src.Load(name)
		if err != nil {
			return nil, fmt.Errorf("assemble %q: %w", name, err)
		}
		frag, err := parse.Auto(name, data)
		if err != nil {
			return nil, fmt.Errorf("assemble %q: %w", name, err)
		}
		mergeFragment(res, frag, name)
	}
	return res, nil
}

// AssembleLax is the best-effort variant: malformed fragments
// contribute whatever parsed and clear the validity flag instead of
// aborting. Load failures still error.
func AssembleLax(src FragmentSource, names ...string) (node *ir.Node, valid bool, err error) {
	res := ir.Null()
	valid = true
	for _, name := range names {
		data, err := src.Load(name)
		if err != nil {
			return nil, false, fmt.Errorf("assemble %q: %w", name, err)
		}
		frag, ok := parseLax(name, data)
		if !ok {
			valid = false
		}
		mergeFragment(res, frag, name)
	}
	return res, valid, nil
}

// AssembleOverrides merges every fragment sharing one logical name, in
// the source's override order. This serves the case of several mods
// each shipping a file of the same name.
func AssembleOverrides(src FragmentSource, name string) (*ir.Node, error) {
	frags, err := src.LoadAll(name)
	if err != nil {
		return nil, fmt.Errorf("assemble %q: %w", name, err)
	}
	res := ir.Null()
	for i, data := range frags {
		frag, err := parse.Auto(name, data)
		if err != nil {
			return nil, fmt.Errorf("assemble %q [%d]: %w", name, i, err)
		}
		mergeFragment(res, frag, fmt.Sprintf("%s[%d]", name, i))
	}
	return res, nil
}

func parseLax(name string, data []byte) (*ir.Node, bool) {
	node, err := parse.Auto(name, data)
	if err == nil {
		return node, true
	}
	// fall back to the recovering JSON parser for the partial tree
	node, _ = parse.JSONLax(data)
	return node, false
}

func mergeFragment(res, frag *ir.Node, name string) {
	if debug.Assemble() {
		debug.Logf("assemble: merging fragment %q\n", name)
	}
	frag.SetMeta(name, true)
	Merge(res, frag, CopyMeta())
}
