package registry

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vk/modgraphgo/internal/graph"
	"golang.org/x/exp/maps"
)

// Renderer writes a resolved module graph to the given writer in one
// specific output format.
type Renderer interface {
	Render(w io.Writer, r *graph.Resolver) error
}

// Registry holds all known output renderers, keyed by format name.
type Registry struct {
	renderers map[string]Renderer
}

// New creates a registry pre-populated with the built-in formats:
// "order", "stages", and "json".
func New() *Registry {
	r := &Registry{renderers: make(map[string]Renderer)}

	// Built-in registration cannot collide; ignore the error returns.
	_ = r.Register("order", &OrderRenderer{})
	_ = r.Register("stages", &StagesRenderer{})
	_ = r.Register("json", &JSONRenderer{})

	return r
}

// Register adds a renderer under the given format name.
func (r *Registry) Register(name string, renderer Renderer) error {
	if name == "" {
		return fmt.Errorf("format name must not be empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer for format %q must not be nil", name)
	}
	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("output format %q is already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// Lookup returns the renderer for the given format name. The error for an
// unknown name lists every registered format.
func (r *Registry) Lookup(name string) (Renderer, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return renderer, nil
}

// Names returns every registered format name, sorted.
func (r *Registry) Names() []string {
	names := maps.Keys(r.renderers)
	sort.Strings(names)
	return names
}
