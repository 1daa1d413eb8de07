package main

import (
	"github.com/anisan-cli/anitaku/cmd"
	"github.com/anisan-cli/anitaku/config"
	"github.com/anisan-cli/anitaku/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
