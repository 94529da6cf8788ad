package main

import (
	"github.com/anipeek/anipeek/cmd"
	"github.com/anipeek/anipeek/config"
	"github.com/anipeek/anipeek/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
