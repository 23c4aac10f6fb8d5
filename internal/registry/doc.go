// Package registry maps output format names to their renderers. Formats
// are registered up front and looked up by the CLI's -output flag, so an
// unknown format is rejected before any resolution work runs.
package registry
