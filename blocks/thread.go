package blocks

import (
	"fmt"
	"io"
	"os"

	"go.starlark.net/starlark"
)

// ThreadOutput receives print() output from threads made by NewThread.
type ThreadOutput io.Writer

func (Module) ThreadOutput() ThreadOutput {
	return os.Stdout
}

type NewThread func(name string) *starlark.Thread

func (Module) NewThread(
	output ThreadOutput,
) NewThread {
	return func(name string) *starlark.Thread {
		return &starlark.Thread{
			Name: name,
			Print: func(thread *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
	}
}
