package blocks

import (
	"github.com/reusee/starblock/configs"
	"go.starlark.net/syntax"
)

// Dialect is the configured file options blocks are parsed with.
type Dialect *syntax.FileOptions

func (Module) Dialect(
	loader configs.Loader,
) Dialect {
	opts := *DefaultFileOptions
	for path, target := range map[string]*bool{
		"set":               &opts.Set,
		"while":             &opts.While,
		"top_level_control": &opts.TopLevelControl,
		"global_reassign":   &opts.GlobalReassign,
		"recursion":         &opts.Recursion,
	} {
		var value bool
		if err := loader.AssignFirst(path, &value); err == nil {
			*target = value
		}
	}
	return Dialect(&opts)
}
