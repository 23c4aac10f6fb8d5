package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/modgraphgo/internal/config"
	"github.com/vk/modgraphgo/internal/ctxlog"
	"github.com/vk/modgraphgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateModule converts an HCL module block into the agnostic model,
// evaluating its attribute expressions and applying the project's default
// artifact when the block declares none.
func (l *Loader) translateModule(ctx context.Context, s *schema.Module, project *config.Project, evalCtx *hcl.EvalContext) (*config.Module, error) {
	artifact, err := evalString(s.Artifact, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("module %q: invalid artifact: %w", s.Name, err)
	}
	if artifact == "" && project != nil {
		artifact = project.DefaultArtifact
		ctxlog.FromContext(ctx).Debug("Applied project default artifact.", "module", s.Name, "artifact", artifact)
	}

	description, err := evalString(s.Description, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("module %q: invalid description: %w", s.Name, err)
	}

	return &config.Module{
		Name:        s.Name,
		Artifact:    artifact,
		Description: description,
		DependsOn:   s.DependsOn,
	}, nil
}

// evalString evaluates an optional attribute expression into a Go string.
// Non-string values that have a safe string conversion are accepted.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	if expr == nil {
		return "", nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}

	var out string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return "", err
	}
	return out, nil
}
