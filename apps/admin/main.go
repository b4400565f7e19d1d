package main

import (
	"log"
	"os"

	"github.com/shulehq/shule/core"
	"github.com/shulehq/shule/core/access"
	"github.com/shulehq/shule/services/directory"
	"github.com/shulehq/shule/services/logger"
	"github.com/shulehq/shule/storage/kv/inmem"
)

func main() {
	conf, err := core.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	std := log.New(os.Stdout, conf.AppName+" ", log.LstdFlags)
	// stored selections are out of scope for a one-shot CLI run
	accessSvc := access.NewService(
		directorysvc.NewHTTPService(conf),
		inmemkv.NewSelectionStore(),
		logsvc.NewConsoleLogger(std),
	)

	cli := &commandLine{accessSvc: accessSvc, conf: conf, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
