package main

import (
	"flag"
	"fmt"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/ci-foundry/vmcat/pkg/platform/simulator"
)

func main() {
	var port, token, catalogID string
	var pendingPolls int
	flag.StringVar(&port, "port", "8485", "server port")
	flag.StringVar(&token, "token", "", "required auth token, empty disables auth")
	flag.StringVar(&catalogID, "catalog-id", "cat-linux", "id of the preloaded catalog item")
	flag.IntVar(&pendingPolls, "pending-polls", 2, "status polls a request spends in progress")
	flag.Parse()

	zlog, err := zap.NewProduction()
	if err != nil {
		panic(err.Error())
	}

	sim := simulator.New(token, pendingPolls, zapr.NewLogger(zlog))
	sim.AddCatalogItem(simulator.CatalogItem{
		ID:               catalogID,
		Name:             "linux-blueprint",
		SupportsShutdown: true,
	})

	if err := sim.Run(fmt.Sprintf(":%s", port)); err != nil {
		panic(err.Error())
	}
}
