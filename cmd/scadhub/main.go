package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "scadhub",
		Usage: "Administer the SCAD internship document store",
		Commands: []*cli.Command{
			initCommand,
			seedCommand,
			cleanCommand,
			proStatusCommand,
			notificationsCommand,
			reportsCommand,
			inboxCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}
