package main

import (
	"fmt"

	"github.com/shulehq/shule/storage/database"
)

func (cli *commandLine) migrate() error {
	db, err := database.Open(cli.conf)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err = database.Ping(db); err != nil {
		return err
	}
	if err = database.Migrate(db); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "migrations applied")
	return nil
}
