package graph

import (
	"fmt"
)

// Module is a single named build unit and its declared dependencies.
type Module struct {
	// Name uniquely identifies the module within one resolver.
	Name string
	// Artifact is an opaque tag describing what the module produces,
	// e.g. "library" or "application". The resolver never interprets it.
	Artifact string
	// Description is optional free-form text from the declaration.
	Description string
	// DependsOn lists the names of modules that must be built first, in
	// declaration order.
	DependsOn []string
}

// state tracks the resolver lifecycle.
type state int

const (
	stateEmpty state = iota
	statePopulated
	stateValidated
	stateOrdered
)

// Resolver accumulates module declarations and turns them into a validated,
// deterministically ordered build plan.
type Resolver struct {
	state   state
	modules map[string]*Module
	// order preserves registration order; all deterministic traversal and
	// error reporting scans it rather than the map.
	order []string
}

// New creates an empty resolver.
func New() *Resolver {
	return &Resolver{
		modules: make(map[string]*Module),
	}
}

// Register adds a module to the registry. No ordering is computed yet. A
// successful call after validation reverts the resolver to the Populated
// state, discarding the validation result.
func (r *Resolver) Register(m *Module) error {
	if m == nil {
		return fmt.Errorf("module must not be nil")
	}
	if m.Name == "" {
		return fmt.Errorf("module name must not be empty")
	}
	if _, exists := r.modules[m.Name]; exists {
		return &DuplicateModuleError{Name: m.Name}
	}

	r.modules[m.Name] = m
	r.order = append(r.order, m.Name)
	r.state = statePopulated
	return nil
}

// Len returns the number of registered modules.
func (r *Resolver) Len() int {
	return len(r.modules)
}

// Module returns the registered module with the given name, if any.
func (r *Resolver) Module(name string) (*Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Modules returns all registered modules in registration order.
func (r *Resolver) Modules() []*Module {
	out := make([]*Module, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.modules[name])
	}
	return out
}

// Validate confirms that every dependency name refers to a registered
// module and that the graph is acyclic. It is a pure check and may be
// called any number of times. Modules are scanned in registration order and
// dependencies in declaration order, so the reported error is stable
// across runs.
func (r *Resolver) Validate() error {
	for _, name := range r.order {
		m := r.modules[name]
		for _, dep := range m.DependsOn {
			if _, ok := r.modules[dep]; !ok {
				return &UnknownDependencyError{Module: name, Dependency: dep}
			}
		}
	}

	if cycle := r.findCycle(); cycle != nil {
		return &CyclicDependencyError{Cycle: cycle}
	}

	if r.state < stateValidated {
		r.state = stateValidated
	}
	return nil
}

// findCycle runs a depth-first search with three-color marking. It returns
// the first cycle found as a closed path (first == last), or nil when the
// graph is acyclic. A self-dependency surfaces here as a two-entry path
// without any special casing.
func (r *Resolver) findCycle() []string {
	const (
		white = iota // unvisited
		grey         // in progress, on the current traversal stack
		black        // done
	)
	color := make(map[string]int, len(r.order))

	var stack []string
	var cycle []string

	var visit func(name string) bool
	visit = func(name string) bool {
		color[name] = grey
		stack = append(stack, name)

		for _, dep := range r.modules[name].DependsOn {
			switch color[dep] {
			case grey:
				// The stack holds the path from the root; the cycle is the
				// suffix starting at the re-encountered node, closed by it.
				start := 0
				for i, n := range stack {
					if n == dep {
						start = i
						break
					}
				}
				cycle = append(cycle, stack[start:]...)
				cycle = append(cycle, dep)
				return true
			case white:
				if visit(dep) {
					return true
				}
			}
		}

		stack = stack[:len(stack)-1]
		color[name] = black
		return false
	}

	for _, name := range r.order {
		if color[name] == white && visit(name) {
			return cycle
		}
	}
	return nil
}

// ensureValidated runs Validate when the resolver has pending,
// unvalidated registrations.
func (r *Resolver) ensureValidated() error {
	if r.state >= stateValidated {
		return nil
	}
	return r.Validate()
}
