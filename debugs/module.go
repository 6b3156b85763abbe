package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/starblock/blocks"
	"github.com/reusee/starblock/logs"
)

type Module struct {
	dscope.Module
	Blocks blocks.Module
	Logs   logs.Module
}
