// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading a manifest from
// disk. The model is the single source of truth for the graph resolver;
// concrete loaders, such as the HCL one, live in separate packages.
package config
