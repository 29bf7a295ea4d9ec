package cmd

import (
	"github.com/shadercoder/hanamaru-renderer/log"
	"github.com/urfave/cli"
)

var logger = log.New("hanamaru")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
