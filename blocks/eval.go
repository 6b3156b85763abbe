package blocks

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval runs src as a block: every statement before a trailing
// top-level expression executes in statement mode against scope, then
// the trailing expression evaluates in expression mode against the
// same scope and its value is returned. Blocks without a trailing
// expression return None.
//
// A nil scope gets a fresh empty one; a nil thread gets a bare thread
// named after the block. Faults from the host runtime are returned
// unmodified; a preamble fault aborts the call before the tail runs,
// and side effects already applied stay applied.
func Eval(thread *starlark.Thread, name string, src any, scope *Scope) (starlark.Value, error) {
	return EvalOptions(DefaultFileOptions, thread, name, src, scope)
}

func EvalOptions(opts *syntax.FileOptions, thread *starlark.Thread, name string, src any, scope *Scope) (starlark.Value, error) {
	if scope == nil {
		scope = NewScope()
	}

	preamble, tail, err := SplitOptions(opts, name, src)
	if err != nil {
		return nil, err
	}

	if err := preamble.Exec(thread, scope); err != nil {
		return nil, err
	}

	return tail.Eval(thread, scope)
}

// Exec executes the preamble statements in statement mode. Bindings
// they create are visible in scope when Exec returns, including
// partial ones made before a fault.
func (p *Preamble) Exec(thread *starlark.Thread, scope *Scope) error {
	if p.keep == 0 {
		// empty preamble is a no-op
		return nil
	}
	if thread == nil {
		thread = &starlark.Thread{Name: p.name}
	}
	if scope == nil {
		scope = NewScope()
	}

	// re-parse: name resolution depends on the scope's current key
	// set, so a unit cannot carry a resolved syntax tree across runs
	file, err := p.opts.Parse(p.name, p.source, 0)
	if err != nil {
		return err
	}
	file.Stmts = file.Stmts[:p.keep]

	env := scope.Env()
	execErr := starlark.ExecREPLChunk(file, thread, env)
	scope.absorb(env, p.bound)
	return execErr
}

// Eval evaluates the trailing expression in expression mode against
// scope, or returns None when the block had no trailing expression.
func (t *Tail) Eval(thread *starlark.Thread, scope *Scope) (starlark.Value, error) {
	if !t.hasExpr {
		return starlark.None, nil
	}
	if thread == nil {
		thread = &starlark.Thread{Name: t.name}
	}
	if scope == nil {
		scope = NewScope()
	}

	file, err := t.opts.Parse(t.name, t.source, 0)
	if err != nil {
		return nil, err
	}
	exprStmt := file.Stmts[len(file.Stmts)-1].(*syntax.ExprStmt)

	return starlark.EvalExprOptions(t.opts, thread, exprStmt.X, scope.Env())
}
