package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vk/modgraphgo/internal/graph"
)

// OrderRenderer prints the build order, one module name per line.
type OrderRenderer struct{}

// Render implements the Renderer interface for OrderRenderer.
func (*OrderRenderer) Render(w io.Writer, r *graph.Resolver) error {
	order, err := r.BuildOrder()
	if err != nil {
		return err
	}
	for _, name := range order {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// StagesRenderer prints numbered build stages; modules within one stage
// may be built in parallel.
type StagesRenderer struct{}

// Render implements the Renderer interface for StagesRenderer.
func (*StagesRenderer) Render(w io.Writer, r *graph.Resolver) error {
	stages, err := r.Stages()
	if err != nil {
		return err
	}
	for i, stage := range stages {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, strings.Join(stage, " ")); err != nil {
			return err
		}
	}
	return nil
}

// JSONRenderer prints the modules, the build order, and the stages as one
// stable JSON document.
type JSONRenderer struct{}

type jsonModule struct {
	Name      string   `json:"name"`
	Artifact  string   `json:"artifact,omitempty"`
	DependsOn []string `json:"depends_on,omitempty"`
}

type jsonDocument struct {
	Modules []jsonModule `json:"modules"`
	Order   []string     `json:"order"`
	Stages  [][]string   `json:"stages"`
}

// Render implements the Renderer interface for JSONRenderer.
func (*JSONRenderer) Render(w io.Writer, r *graph.Resolver) error {
	order, err := r.BuildOrder()
	if err != nil {
		return err
	}
	stages, err := r.Stages()
	if err != nil {
		return err
	}

	doc := jsonDocument{
		Modules: make([]jsonModule, 0, r.Len()),
		Order:   order,
		Stages:  stages,
	}
	for _, m := range r.Modules() {
		doc.Modules = append(doc.Modules, jsonModule{
			Name:      m.Name,
			Artifact:  m.Artifact,
			DependsOn: m.DependsOn,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
