package graph

import (
	"fmt"
	"strings"
)

// DuplicateModuleError is returned by Register when a module name is
// already present in the registry.
type DuplicateModuleError struct {
	Name string
}

// Error implements the error interface for DuplicateModuleError.
func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("module %q is already registered", e.Name)
}

// UnknownDependencyError is returned by Validate when a module declares a
// dependency on a name that is not in the registry.
type UnknownDependencyError struct {
	// Module is the module whose declaration is at fault.
	Module string
	// Dependency is the name that could not be resolved.
	Dependency string
}

// Error implements the error interface for UnknownDependencyError.
func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("module %q depends on unknown module %q", e.Module, e.Dependency)
}

// CyclicDependencyError is returned when the dependency declarations form a
// closed loop, making a valid build order impossible.
type CyclicDependencyError struct {
	// Cycle is the ordered sequence of module names forming the loop. The
	// first and last entries are the same module, e.g. [a b c a]. A
	// self-dependency is reported as [a a].
	Cycle []string
}

// Error implements the error interface for CyclicDependencyError.
func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}
