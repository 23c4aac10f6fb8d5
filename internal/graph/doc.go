// Package graph implements the module graph resolver: a registry of named
// build modules and their declared dependencies, validated into a DAG and
// queried for a deterministic build order.
//
// The resolver moves through four states: Empty, Populated (after one or
// more Register calls), Validated (after a successful Validate), and
// Ordered (after BuildOrder or Stages). Registering a module after
// validation reverts the resolver to Populated, invalidating any
// previously computed order.
//
// The resolver provides no internal locking; callers sharing one instance
// across goroutines must serialize Register/Validate/BuildOrder externally.
package graph
