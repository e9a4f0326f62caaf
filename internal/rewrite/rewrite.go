package rewrite

import (
	"context"

	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.Transformer = (*Engine)(nil)

// Pass is a single named rewrite stage.
type Pass struct {
	// Name identifies the pass for logging and tests.
	Name string

	// Apply rewrites the input. Must be total and deterministic.
	Apply func(string) string
}

// Engine runs an ordered sequence of rewrite passes.
type Engine struct {
	passes []Pass
}

// New creates an engine with the default pass pipeline.
func New() *Engine {
	return &Engine{passes: DefaultPasses()}
}

// NewWithPasses creates an engine with a custom pipeline.
// Passes run in the order provided.
func NewWithPasses(passes ...Pass) *Engine {
	return &Engine{passes: passes}
}

// Transform runs content through every pass in order.
// Empty input yields empty output. The only failure mode is context
// cancellation, checked between passes; a cancelled call returns no
// partial result.
func (e *Engine) Transform(ctx context.Context, content string) (string, error) {
	out := content
	for _, pass := range e.passes {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		out = pass.Apply(out)
	}
	return out, nil
}

// Len returns the number of passes in the pipeline.
func (e *Engine) Len() int {
	return len(e.passes)
}
