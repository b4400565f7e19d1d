package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/shulehq/shule/core"
	"github.com/shulehq/shule/core/access"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	accessSvc *access.Service
	conf      *core.Config
	out       io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  resolve -token TOKEN - print a principal's academies, roles and landing route")
	fmt.Fprintln(cli.out, "  migrate              - run database migrations")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	resolveCmd := flag.NewFlagSet("resolve", flag.ExitOnError)
	resolveToken := resolveCmd.String("token", "", "The principal's bearer token.")

	switch args[1] {
	case "resolve":
		if err := resolveCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resolveToken == "" {
			resolveCmd.Usage()
			return errHelp
		}
		return cli.resolve(*resolveToken)
	case "migrate":
		return cli.migrate()
	default:
		cli.printUsage()
		return errHelp
	}
}
