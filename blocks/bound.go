package blocks

import "go.starlark.net/syntax"

// boundNames returns the names bound by the given top-level
// statements, in first-binding order. Statements nested in top-level
// control flow bind at the same level, so those are walked too; def
// bodies have their own scope and are not.
func boundNames(stmts []syntax.Stmt) []string {
	seen := make(map[string]bool)
	var names []string

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	var addTarget func(expr syntax.Expr)
	addTarget = func(expr syntax.Expr) {
		switch expr := expr.(type) {
		case *syntax.Ident:
			add(expr.Name)
		case *syntax.TupleExpr:
			for _, elem := range expr.List {
				addTarget(elem)
			}
		case *syntax.ListExpr:
			for _, elem := range expr.List {
				addTarget(elem)
			}
		case *syntax.ParenExpr:
			addTarget(expr.X)
		}
		// index and dot targets mutate an object, they bind nothing
	}

	var walk func(stmts []syntax.Stmt)
	walk = func(stmts []syntax.Stmt) {
		for _, stmt := range stmts {
			switch stmt := stmt.(type) {
			case *syntax.AssignStmt:
				addTarget(stmt.LHS)
			case *syntax.DefStmt:
				add(stmt.Name.Name)
			case *syntax.ForStmt:
				addTarget(stmt.Vars)
				walk(stmt.Body)
			case *syntax.WhileStmt:
				walk(stmt.Body)
			case *syntax.IfStmt:
				walk(stmt.True)
				walk(stmt.False)
			case *syntax.LoadStmt:
				for _, ident := range stmt.To {
					add(ident.Name)
				}
			}
		}
	}
	walk(stmts)

	return names
}
