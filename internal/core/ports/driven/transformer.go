package driven

import "context"

// Transformer rewrites document text. Implementations must be
// deterministic and side-effect free: the same input always yields
// the same output, and a failure leaves no partial state behind.
type Transformer interface {
	// Transform applies the rewrite to content and returns the
	// result. Empty input yields empty output. The context is
	// honoured for cancellation between internal stages.
	Transform(ctx context.Context, content string) (string, error)
}
