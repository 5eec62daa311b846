package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry errors.
var (
	ErrDuplicateObject = errors.New("duplicate object path")
	ErrObjectNotFound  = errors.New("object not found")
	ErrInvalidObject   = errors.New("invalid object definition")
)

// Registry indexes object definitions by path template.
// It is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	// Definitions indexed by path template.
	objects map[string]*ObjectDef

	// Registration order, for stable listings.
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[string]*ObjectDef),
	}
}

// Register adds a definition.
// Returns an error if the path is malformed or already registered.
func (r *Registry) Register(def *ObjectDef) error {
	if def == nil || !strings.HasSuffix(def.Path, ".") || def.Name == "" {
		return ErrInvalidObject
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.objects[def.Path]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateObject, def.Path)
	}

	r.objects[def.Path] = def
	r.order = append(r.order, def.Path)
	return nil
}

// Lookup returns the definition registered under a path template.
func (r *Registry) Lookup(path string) (*ObjectDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.objects[path]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, path)
	}
	return def, nil
}

// Match returns the definition for a concrete object path such as
// "Device.DynamicDNS.Client.3.". Instance numbers and [alias] references
// match the {i} placeholder.
func (r *Registry) Match(path string) (*ObjectDef, error) {
	if def, err := r.Lookup(path); err == nil {
		return def, nil
	}
	return r.Lookup(TemplatePath(path))
}

// TemplatePath replaces every instance reference in a dotted path with
// the {i} placeholder.
func TemplatePath(path string) string {
	trailing := strings.HasSuffix(path, ".")
	segs := strings.Split(strings.TrimSuffix(path, "."), ".")
	for i, seg := range segs {
		if isInstanceRef(seg) {
			segs[i] = "{i}"
		}
	}
	out := strings.Join(segs, ".")
	if trailing {
		out += "."
	}
	return out
}

func isInstanceRef(seg string) bool {
	if seg == "" {
		return false
	}
	if strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]") {
		return true
	}
	for _, c := range seg {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

// Paths returns all registered path templates in registration order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, len(r.order))
	copy(paths, r.order)
	return paths
}

// Objects returns all definitions in registration order.
func (r *Registry) Objects() []*ObjectDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*ObjectDef, 0, len(r.order))
	for _, p := range r.order {
		defs = append(defs, r.objects[p])
	}
	return defs
}

// ByStandard returns the definitions of one standard, sorted by path.
func (r *Registry) ByStandard(std Standard) []*ObjectDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var defs []*ObjectDef
	for _, def := range r.objects {
		if def.Standard == std {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Path < defs[j].Path })
	return defs
}

// Children returns the definitions of the direct children of a path
// template, in the order the parent declares them.
func (r *Registry) Children(path string) ([]*ObjectDef, error) {
	parent, err := r.Lookup(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*ObjectDef, 0, len(parent.Children))
	for _, c := range parent.Children {
		if def, ok := r.objects[c.Object]; ok {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// Roots returns the definitions whose parent is not registered, sorted by
// path.
func (r *Registry) Roots() []*ObjectDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	children := make(map[string]bool)
	for _, def := range r.objects {
		for _, c := range def.Children {
			children[c.Object] = true
		}
	}

	var roots []*ObjectDef
	for p, def := range r.objects {
		if !children[p] {
			roots = append(roots, def)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Path < roots[j].Path })
	return roots
}
