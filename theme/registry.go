package theme

import "fmt"

// Registry is an ordered, read-only set of themes addressed by key
type Registry struct {
	order  []string
	themes map[string]*Theme
}

// NewRegistry validates and indexes themes, preserving the given order
func NewRegistry(themes ...*Theme) (*Registry, error) {
	if len(themes) == 0 {
		return nil, fmt.Errorf("registry: %w", ErrEmptyPalette)
	}
	r := &Registry{
		order:  make([]string, 0, len(themes)),
		themes: make(map[string]*Theme, len(themes)),
	}
	for _, t := range themes {
		if t == nil || t.Key == "" {
			return nil, ErrEmptyKey
		}
		if len(t.Colors) == 0 {
			return nil, fmt.Errorf("theme %q: %w", t.Key, ErrEmptyPalette)
		}
		if _, ok := r.themes[t.Key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, t.Key)
		}
		r.order = append(r.order, t.Key)
		r.themes[t.Key] = t
	}
	return r, nil
}

// Get returns the theme for key, ok is false when not registered
func (r *Registry) Get(key string) (*Theme, bool) {
	t, ok := r.themes[key]
	return t, ok
}

// Has reports whether key is registered
func (r *Registry) Has(key string) bool {
	_, ok := r.themes[key]
	return ok
}

// Lookup is Get with an error for unregistered keys, used when parsing flags
func (r *Registry) Lookup(key string) (*Theme, error) {
	t, ok := r.themes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, key, r.order)
	}
	return t, nil
}

// Keys returns theme keys in registration order
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// At returns the theme at position i in registration order
func (r *Registry) At(i int) (*Theme, bool) {
	if i < 0 || i >= len(r.order) {
		return nil, false
	}
	return r.themes[r.order[i]], true
}

// Index returns the position of key in registration order, -1 if absent
func (r *Registry) Index(key string) int {
	for i, k := range r.order {
		if k == key {
			return i
		}
	}
	return -1
}

// Len returns the number of themes
func (r *Registry) Len() int {
	return len(r.order)
}

// Next returns the key following key in registration order, wrapping around
// Unknown keys yield the first theme
func (r *Registry) Next(key string) string {
	i := r.Index(key)
	return r.order[(i+1)%len(r.order)]
}
