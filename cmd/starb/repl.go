package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/starblock/blocks"
	"github.com/reusee/starblock/configs"
	"github.com/reusee/starblock/vars"
	"go.starlark.net/starlark"
)

// RunREPL reads blocks interactively and evaluates them against one
// persistent scope, printing non-None trailing values.
type RunREPL func(ctx context.Context, scope *blocks.Scope) error

func (Module) RunREPL(
	evaluate blocks.Evaluate,
	loader configs.Loader,
) RunREPL {
	return func(ctx context.Context, scope *blocks.Scope) error {

		prompt := vars.FirstNonZero(
			configs.First[string](loader, "prompt"),
			">>> ",
		)
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      prompt,
			HistoryFile: configs.First[string](loader, "history"),
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			block, err := readBlock(rl, prompt)
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if strings.TrimSpace(block) == "" {
				continue
			}

			value, err := evaluate(ctx, "<repl>", block, scope)
			if err != nil {
				if evalErr, ok := err.(*starlark.EvalError); ok {
					pt("%s\n", evalErr.Backtrace())
				} else {
					pt("%s\n", err)
				}
				continue
			}
			printValue(value)
		}
	}
}

// readBlock reads one logical block: a single line, or, when the line
// opens an indented suite, every following line up to a blank one.
func readBlock(rl *readline.Instance, prompt string) (string, error) {
	rl.SetPrompt(prompt)
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	if !opensSuite(line) {
		return line, nil
	}

	lines := []string{line}
	rl.SetPrompt("... ")
	for {
		line, err := rl.Readline()
		if err != nil {
			// evaluate what we have
			break
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func opensSuite(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	return strings.HasSuffix(trimmed, ":") ||
		strings.HasSuffix(trimmed, "\\")
}
