package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/starblock/blocks"
	"github.com/reusee/starblock/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap drops into an interactive starlark session seeded with the
// given Go values, for inspecting program state.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	dialect blocks.Dialect,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = blocks.ToStarlark(value)
		}

		thread := &starlark.Thread{
			Name: "tap: " + what,
		}
		repl.REPLOptions((*syntax.FileOptions)(dialect), thread, mappings)
	}
}
