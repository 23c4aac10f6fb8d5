// Package hcl provides the concrete HCL implementation of the
// config.Loader interface. It is responsible for manifest file discovery,
// HCL parsing, expression evaluation against project values, and the
// translation into the format-agnostic config model.
package hcl
