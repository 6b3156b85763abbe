package blocks

import "go.starlark.net/syntax"

// DefaultFileOptions is the dialect blocks are parsed with unless the
// caller supplies its own: the full non-module feature set, since a
// block is interactive-style input rather than a load-able module.
var DefaultFileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

const DefaultName = "<block>"
