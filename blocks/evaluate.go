package blocks

import (
	"context"

	"github.com/reusee/starblock/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Evaluate runs one block against scope with the configured dialect,
// under a fresh evaluation span. Errors pass through unmodified.
type Evaluate func(ctx context.Context, name string, src any, scope *Scope) (starlark.Value, error)

func (Module) Evaluate(
	newThread NewThread,
	newSpan logs.NewSpan,
	logger logs.Logger,
	dialect Dialect,
) Evaluate {
	return func(ctx context.Context, name string, src any, scope *Scope) (starlark.Value, error) {
		ctx, span := newSpan(ctx, "")
		if name == "" {
			name = DefaultName
		}

		thread := newThread(string(span))
		value, err := EvalOptions((*syntax.FileOptions)(dialect), thread, name, src, scope)
		if err != nil {
			logger.DebugContext(ctx, "block failed",
				"name", name,
				"error", err,
			)
			return nil, err
		}

		logger.DebugContext(ctx, "block evaluated",
			"name", name,
			"value", value.String(),
		)
		return value, nil
	}
}
