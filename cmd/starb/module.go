package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/starblock/blocks"
	"github.com/reusee/starblock/debugs"
)

type Module struct {
	dscope.Module
	Blocks blocks.Module
	Debugs debugs.Module
}
