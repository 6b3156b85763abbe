package blocks

import (
	"fmt"
	"io"

	"go.starlark.net/syntax"
)

// Preamble is the executable form of all statements in a block except
// a removed trailing expression. It may be empty, in which case Exec
// is a no-op.
type Preamble struct {
	opts   *syntax.FileOptions
	name   string
	source string
	keep   int
	bound  []string
}

// Tail is the executable form of a block's trailing expression, or an
// absent one that evaluates to None.
type Tail struct {
	opts    *syntax.FileOptions
	name    string
	source  string
	hasExpr bool
}

// Split parses src as a top-level statement sequence and cuts it into
// a preamble unit and a tail unit. Only a bare expression statement at
// the outermost level of the block becomes the tail; expressions
// nested in loops, conditionals or function bodies never qualify.
//
// Split is pure. The returned units are immutable, reusable against
// any scope, and behaviorally equivalent across calls on identical
// source. name tags compiled code in errors and tracebacks.
func Split(name string, src any) (*Preamble, *Tail, error) {
	return SplitOptions(DefaultFileOptions, name, src)
}

func SplitOptions(opts *syntax.FileOptions, name string, src any) (*Preamble, *Tail, error) {
	if name == "" {
		name = DefaultName
	}

	source, err := sourceText(src)
	if err != nil {
		return nil, nil, err
	}

	file, err := opts.Parse(name, source, 0)
	if err != nil {
		return nil, nil, err
	}

	keep := len(file.Stmts)
	hasExpr := false
	if keep > 0 {
		if _, ok := file.Stmts[keep-1].(*syntax.ExprStmt); ok {
			keep--
			hasExpr = true
		}
	}

	preamble := &Preamble{
		opts:   opts,
		name:   name,
		source: source,
		keep:   keep,
		bound:  boundNames(file.Stmts[:keep]),
	}
	tail := &Tail{
		opts:    opts,
		name:    name,
		source:  source,
		hasExpr: hasExpr,
	}
	return preamble, tail, nil
}

func sourceText(src any) (string, error) {
	switch src := src.(type) {
	case string:
		return src, nil
	case []byte:
		return string(src), nil
	case io.Reader:
		content, err := io.ReadAll(src)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return "", fmt.Errorf("unsupported source type: %T", src)
}
