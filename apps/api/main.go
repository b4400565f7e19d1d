package main

import (
	"log"
	"os"

	"github.com/shulehq/shule/apps/api/echo"
	"github.com/shulehq/shule/core"
	"github.com/shulehq/shule/core/access"
	"github.com/shulehq/shule/services/directory"
	"github.com/shulehq/shule/services/logger"
	"github.com/shulehq/shule/storage/database"
	"github.com/shulehq/shule/storage/database/sqlx"
	"github.com/shulehq/shule/storage/kv/inmem"
	"github.com/shulehq/shule/storage/kv/redis"
)

func main() {
	conf, err := core.NewConfig()
	errAndDie(err)

	std := log.New(os.Stdout, conf.AppName+" ", log.LstdFlags|log.Lshortfile)

	// set up services
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	var selStore access.SelectionStore
	switch conf.SelectionStore {
	case "database":
		db, err := database.Open(conf)
		errAndDie(err)
		defer func() { _ = db.Close() }()
		errAndDie(database.Ping(db))
		errAndDie(database.Migrate(db))
		selStore = sqlxrepos.NewSelectionStore(db)
	case "redis":
		client, err := rediskv.Open(conf)
		errAndDie(err)
		defer func() { _ = client.Close() }()
		selStore = rediskv.NewSelectionStore(client, conf)
	default:
		selStore = inmemkv.NewSelectionStore()
	}

	accessSvc := access.NewService(directorysvc.NewHTTPService(conf), selStore, logger)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:   conf.Server.Address(),
			Conf:      conf,
			Logger:    logger,
			AccessSvc: accessSvc,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
