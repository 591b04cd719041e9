package theme

import (
	"fmt"
	"sort"
)

// Registry is a caller-owned collection of named themes. Applications create
// one, register their themes, and pass it (or the resolved Theme) down
// explicitly; there is no package-level registry.
type Registry struct {
	themes   map[string]Theme
	fallback string
}

// NewRegistry creates a registry seeded with the Default theme under the
// name "default", which is also the initial fallback.
func NewRegistry() *Registry {
	return &Registry{
		themes:   map[string]Theme{"default": Default},
		fallback: "default",
	}
}

// Register adds or replaces a theme under the given name.
func (r *Registry) Register(name string, t Theme) {
	r.themes[name] = t
}

// SetFallback selects the theme returned for unknown names. The named theme
// must already be registered.
func (r *Registry) SetFallback(name string) error {
	if _, ok := r.themes[name]; !ok {
		return fmt.Errorf("theme %q not registered", name)
	}
	r.fallback = name
	return nil
}

// Get returns the theme registered under name, or the fallback theme when
// the name is unknown. The second return value reports an exact match.
func (r *Registry) Get(name string) (Theme, bool) {
	if t, ok := r.themes[name]; ok {
		return t, true
	}
	return r.themes[r.fallback], false
}

// Names returns the registered theme names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
