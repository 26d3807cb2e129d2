package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/relationest/internal/buildinfo"
	"github.com/dmitrijs2005/relationest/internal/client/cli"
	"github.com/dmitrijs2005/relationest/internal/client/config"
	"github.com/dmitrijs2005/relationest/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
