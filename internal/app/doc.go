// Package app wires the manifest loader, the graph resolver, and the
// output registry into one application lifecycle: load at construction
// time, resolve and render at run time.
package app
