// Package render serializes the aggregated timeline into its published
// artifacts: CSV and TSV tables for machine consumption and an HTML page for
// browsing. Rendering is deterministic: identical input (and clock) produces
// byte-identical output.
package render

import "fmt"

// RenderError reports a serialization failure. It is fatal to the run.
type RenderError struct {
	Artifact string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Artifact, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
