package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/modgraphgo/internal/config"
	"github.com/vk/modgraphgo/internal/ctxlog"
	"github.com/vk/modgraphgo/internal/fsutil"
	"github.com/vk/modgraphgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL manifest loading process: discover
// every .hcl file under the given paths, decode all blocks, then translate
// them into the model. Modules keep declaration order within a file and
// sorted-file order across files, so registration order is reproducible.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var hclFiles []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				hclFiles = append(hclFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	logger.Debug("Discovered manifest files.", "count", len(hclFiles))

	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found under the given paths")
	}

	parser := hclparse.NewParser()
	var roots []*schema.ManifestConfig
	var project *schema.Project

	// First pass: parse and decode every file, and pin down the single
	// project block so the second pass can evaluate expressions against it.
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}

		var root schema.ManifestConfig
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", file, diags)
		}

		for _, p := range root.Projects {
			if project != nil {
				return nil, fmt.Errorf("duplicate project block %q in %s: a manifest may declare at most one project", p.Name, file)
			}
			project = p
		}
		roots = append(roots, &root)
	}

	evalCtx := projectEvalContext(project)

	manifest := &config.Manifest{}
	if project != nil {
		manifest.Project = &config.Project{
			Name:            project.Name,
			DefaultArtifact: project.DefaultArtifact,
		}
	}

	// Second pass: translate module blocks in discovery order.
	for _, root := range roots {
		for _, mod := range root.Modules {
			translated, err := l.translateModule(ctx, mod, manifest.Project, evalCtx)
			if err != nil {
				return nil, err
			}
			manifest.Modules = append(manifest.Modules, translated)
		}
	}

	logger.Debug("HCL loading complete.", "modules", len(manifest.Modules))
	return manifest, nil
}

// projectEvalContext builds the evaluation context exposed to module
// attribute expressions, e.g. `description = "${project.name} backend"`.
func projectEvalContext(project *schema.Project) *hcl.EvalContext {
	if project == nil {
		return nil
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"project": cty.ObjectVal(map[string]cty.Value{
				"name":             cty.StringVal(project.Name),
				"default_artifact": cty.StringVal(project.DefaultArtifact),
			}),
		},
	}
}
