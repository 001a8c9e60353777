// Package dot serializes a core.Graph into the Graphviz DOT language and
// optionally hands the result to an external renderer.
//
// The serialization styles three roles the meshification pipeline cares
// about: vertex 0 as the topology root, cut vertices in warning colors,
// and redundant (augmentation) edges distinct from original links. Output
// is deterministic: vertices ascending, each undirected edge emitted once
// with u < v.
//
// Rendering shells out to Graphviz's sfdp; its absence or failure is an
// error for the caller to log and ignore — core results never depend on it.
package dot

import "errors"

// Sentinel errors for DOT export and rendering.
var (
	// ErrNilGraph is returned when Marshal or WriteFile receives a nil graph.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrRendererNotFound indicates the Graphviz sfdp binary is not on PATH.
	ErrRendererNotFound = errors.New("dot: sfdp renderer not found")
)

// defaultGraphName is the DOT graph identifier, kept from the RPL DODAG
// origin of the pipeline.
const defaultGraphName = "dodag"

// Option configures the serialization.
type Option func(*Options)

// Options holds serialization parameters.
type Options struct {
	// Name is the DOT graph identifier.
	Name string

	// Redundant styles redundant edges distinctly when true; when false
	// every edge renders as an original link (pre-meshification view).
	Redundant bool
}

// DefaultOptions returns the default serialization parameters:
// graph name "dodag", redundant styling off.
func DefaultOptions() Options {
	return Options{Name: defaultGraphName}
}

// WithName returns an Option that sets the DOT graph identifier.
// An empty name has no effect.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithRedundant returns an Option that toggles distinct styling for
// redundant edges.
func WithRedundant(on bool) Option {
	return func(o *Options) { o.Redundant = on }
}
