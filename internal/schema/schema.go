// Package schema holds the HCL-specific structs that manifest files are
// decoded into before translation to the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Project represents a `project` block. Its declarations apply to every
// module in the manifest; at most one project block is allowed across all
// files.
type Project struct {
	Name            string `hcl:"name,label"`
	DefaultArtifact string `hcl:"default_artifact,optional"`
}

// Module represents a `module` block from a manifest file. Artifact and
// description stay as expressions so they can reference project values.
type Module struct {
	Name        string         `hcl:"name,label"`
	Artifact    hcl.Expression `hcl:"artifact,optional"`
	Description hcl.Expression `hcl:"description,optional"`
	DependsOn   []string       `hcl:"depends_on,optional"`
}

// ManifestConfig represents the top-level structure of one manifest file.
type ManifestConfig struct {
	Projects []*Project `hcl:"project,block"`
	Modules  []*Module  `hcl:"module,block"`
	Body     hcl.Body   `hcl:",remain"`
}
