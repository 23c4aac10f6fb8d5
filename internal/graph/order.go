package graph

// BuildOrder produces a sequence of module names such that every module's
// dependencies appear strictly before it. Ties between independent modules
// are broken by registration order, so repeated calls over the same
// registrations yield identical output.
//
// When the resolver has not been validated since the last registration,
// BuildOrder validates first and surfaces the same typed errors as
// Validate. On error no partial order is returned.
func (r *Resolver) BuildOrder() ([]string, error) {
	if err := r.ensureValidated(); err != nil {
		return nil, err
	}

	done := make(map[string]bool, len(r.order))
	out := make([]string, 0, len(r.order))

	// Post-order DFS. The graph is known acyclic here, so plain done
	// marking suffices; roots scan in registration order and dependencies
	// in declaration order, which fixes the tie-breaking.
	var visit func(name string)
	visit = func(name string) {
		if done[name] {
			return
		}
		done[name] = true
		for _, dep := range r.modules[name].DependsOn {
			visit(dep)
		}
		out = append(out, name)
	}

	for _, name := range r.order {
		visit(name)
	}

	r.state = stateOrdered
	return out, nil
}

// Stages groups the build order into stages whose members only depend on
// modules in earlier stages, so a host build tool may build each stage in
// parallel. Within a stage, members keep registration order. Stages
// validates under the same rules as BuildOrder.
func (r *Resolver) Stages() ([][]string, error) {
	if err := r.ensureValidated(); err != nil {
		return nil, err
	}

	remaining := make(map[string]bool, len(r.order))
	for _, name := range r.order {
		remaining[name] = true
	}
	built := make(map[string]bool, len(r.order))

	var stages [][]string
	for len(remaining) > 0 {
		var stage []string
	nextModule:
		for _, name := range r.order {
			if !remaining[name] {
				continue
			}
			for _, dep := range r.modules[name].DependsOn {
				if !built[dep] {
					continue nextModule
				}
			}
			stage = append(stage, name)
		}
		// Validation guarantees acyclicity, so every pass frees at least
		// one module.
		for _, name := range stage {
			built[name] = true
			delete(remaining, name)
		}
		stages = append(stages, stage)
	}

	r.state = stateOrdered
	return stages, nil
}
