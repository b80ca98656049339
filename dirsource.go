package jsontree

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jeyms233/jsontree/debug"
)

// fragmentExts lists the extensions tried, in order, when a fragment
// name carries none.
var fragmentExts = []string{".json", ".yaml", ".yml"}

// DirSource is a FragmentSource over a stack of filesystem layers.
// Layers are given base first, so a fragment present in several layers
// resolves to the last layer's copy; LoadAll exposes the whole stack
// for override-order assembly.
type DirSource struct {
	layers []fs.FS
}

// NewDirSource stacks the given filesystems, earliest base first. At
// least one layer is required.
func NewDirSource(layers ...fs.FS) *DirSource {
	return &DirSource{layers: layers}
}

// Load returns the named fragment from the highest layer that has it.
// A name without an extension tries .json, .yaml and .yml in turn.
func (s *DirSource) Load(name string) ([]byte, error) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		data, path, err := readFragment(s.layers[i], name)
		if err == nil {
			if debug.Assemble() {
				debug.Logf("dirsource: %q from layer %d (%s)\n", name, i, path)
			}
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("fragment %q: %w", name, fs.ErrNotExist)
}

// LoadAll returns every layer's copy of the named fragment, base
// first. A name present in no layer is an error.
func (s *DirSource) LoadAll(name string) ([][]byte, error) {
	var res [][]byte
	for _, layer := range s.layers {
		data, _, err := readFragment(layer, name)
		if err == nil {
			res = append(res, data)
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("fragment %q: %w", name, fs.ErrNotExist)
	}
	return res, nil
}

func readFragment(layer fs.FS, name string) (data []byte, path string, err error) {
	candidates := []string{name}
	if !hasFragmentExt(name) {
		candidates = candidates[:0]
		for _, ext := range fragmentExts {
			candidates = append(candidates, name+ext)
		}
	}
	for _, path := range candidates {
		data, err := fs.ReadFile(layer, path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, fmt.Errorf("could not read %q: %w", path, err)
		}
	}
	return nil, "", fs.ErrNotExist
}

func hasFragmentExt(name string) bool {
	for _, ext := range fragmentExts {
		if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
			return true
		}
	}
	return false
}

