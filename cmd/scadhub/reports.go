package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"scadhub-backend/internal/mailbox"
	"scadhub-backend/internal/report"
	"scadhub-backend/internal/store"
)

var reportsCommand = &cli.Command{
	Name:  "reports",
	Usage: "List display-ready report views for SCAD review",
	Action: func(c *cli.Context) error {
		s, err := store.GetMainStore()
		if err != nil {
			return err
		}

		views, err := report.BuildReportViews(s)
		if err != nil {
			return err
		}

		for _, v := range views {
			appealed := ""
			if v.HasAppeal {
				appealed = " (appealed)"
			}
			fmt.Printf("%s  %s <%s>  %s  status=%s%s\n",
				v.InternshipID, v.StudentName, v.StudentEmail, v.CompanyName, v.Status, appealed)
		}
		return s.Close()
	},
}

var inboxCommand = &cli.Command{
	Name:      "inbox",
	Usage:     "List a recipient's mailbox, newest first",
	ArgsUsage: "<email>",
	Action: func(c *cli.Context) error {
		recipient := c.Args().First()
		if recipient == "" {
			return fmt.Errorf("usage: scadhub inbox <email>")
		}

		s, err := store.GetMainStore()
		if err != nil {
			return err
		}

		emails, err := mailbox.Inbox(s, recipient)
		if err != nil {
			return err
		}

		for _, e := range emails {
			read := " "
			if e.Read {
				read = "x"
			}
			fmt.Printf("[%s] %s  %s  %s\n", read, e.Date, e.Sender, e.Subject)
		}
		return s.Close()
	},
}
