package main

import (
	"context"
	"log"
	"os"

	"github.com/ndmitriev/gatekeeper/internal/buildinfo"
	"github.com/ndmitriev/gatekeeper/internal/client/cli"
	"github.com/ndmitriev/gatekeeper/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
