package config

// Module is the format-agnostic representation of a `module` block: one
// independently buildable unit and the names of the modules it needs first.
type Module struct {
	Name        string
	Artifact    string
	Description string
	DependsOn   []string
}

// Project holds the declarations that apply to all modules in a manifest.
type Project struct {
	Name string
	// DefaultArtifact fills the artifact tag of modules that do not
	// declare their own.
	DefaultArtifact string
}

// Manifest is the unified representation of one project declaration: an
// optional project block plus every module, in declaration order across
// files.
type Manifest struct {
	Project *Project
	Modules []*Module
}
