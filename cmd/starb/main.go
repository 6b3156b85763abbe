package main

import (
	"context"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/starblock/blocks"
	"github.com/reusee/starblock/cmds"
	"github.com/reusee/starblock/debugs"
	"github.com/reusee/starblock/logs"
	"github.com/reusee/starblock/modes"
	"go.starlark.net/starlark"
	"golang.org/x/term"
)

var (
	evalFlags   = cmds.Collect[string]("-e")
	fileFlags   = cmds.Collect[string]("file")
	interactive = cmds.Switch("-i")
	tapAtExit   = cmds.Switch("-tap")
)

func init() {
	cmds.Define("-v", cmds.Func(func() {
		pt("starb: evaluate starlark blocks\n")
		os.Exit(0)
	}).Desc("print version info"))
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(run)
}

func run(
	logger logs.Logger,
	evaluate blocks.Evaluate,
	runREPL RunREPL,
	tap debugs.Tap,
) {
	ctx := context.Background()

	// one scope shared by everything evaluated in this invocation
	blockScope := blocks.NewScope()

	ran := false

	for _, code := range *evalFlags {
		value, err := evaluate(ctx, "<cmdline>", code, blockScope)
		if err != nil {
			exitEvalError(err)
		}
		printValue(value)
		ran = true
	}

	for _, path := range *fileFlags {
		content, err := os.ReadFile(path)
		ce(err)
		value, err := evaluate(ctx, path, content, blockScope)
		if err != nil {
			exitEvalError(err)
		}
		printValue(value)
		ran = true
	}

	if !ran && !term.IsTerminal(int(os.Stdin.Fd())) {
		// piped input is one block
		content, err := io.ReadAll(os.Stdin)
		ce(err)
		value, err := evaluate(ctx, "<stdin>", content, blockScope)
		if err != nil {
			exitEvalError(err)
		}
		printValue(value)
		ran = true
	}

	if !ran || *interactive {
		logger.Info("starting interactive session")
		ce(runREPL(ctx, blockScope))
	}

	if *tapAtExit {
		globals := make(map[string]any, len(blockScope.Globals))
		for name, value := range blockScope.Globals {
			globals[name] = blocks.FromStarlark(value)
		}
		tap(ctx, "starb", globals)
	}
}

func printValue(value starlark.Value) {
	if value == starlark.None {
		return
	}
	pt("%s\n", value.String())
}

func exitEvalError(err error) {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		os.Stderr.WriteString(evalErr.Backtrace() + "\n")
	} else {
		os.Stderr.WriteString(err.Error() + "\n")
	}
	os.Exit(1)
}
