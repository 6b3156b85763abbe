package blocks

import (
	"github.com/reusee/dscope"
	"github.com/reusee/starblock/configs"
	"github.com/reusee/starblock/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
