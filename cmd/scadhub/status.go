package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"scadhub-backend/internal/eligibility"
	"scadhub-backend/internal/model"
	"scadhub-backend/internal/notification"
	"scadhub-backend/internal/session"
	"scadhub-backend/internal/store"
)

var proStatusCommand = &cli.Command{
	Name:      "pro-status",
	Usage:     "Recompute a student's pro status from the stored data",
	ArgsUsage: "<email>",
	Action: func(c *cli.Context) error {
		email := c.Args().First()
		if email == "" {
			return fmt.Errorf("usage: scadhub pro-status <email>")
		}

		s, err := store.GetMainStore()
		if err != nil {
			return err
		}

		pro, err := eligibility.ComputeProStatus(s, email)
		if err != nil {
			return err
		}

		if pro {
			fmt.Printf("%s is a pro student (>= %d internship days)\n", email, eligibility.ProThresholdDays)
		} else {
			fmt.Printf("%s is not a pro student\n", email)
		}
		return s.Close()
	},
}

var notificationsCommand = &cli.Command{
	Name:      "notifications",
	Usage:     "List the notifications visible to a user",
	ArgsUsage: "<email> <role>",
	Action: func(c *cli.Context) error {
		email, role := c.Args().Get(0), c.Args().Get(1)
		if email == "" || role == "" {
			return fmt.Errorf("usage: scadhub notifications <email> <role>")
		}

		s, err := store.GetMainStore()
		if err != nil {
			return err
		}

		all, err := store.GetAllAs[model.Notification](s, store.Notifications)
		if err != nil {
			return err
		}

		visible := notification.Visible(all, session.Session{Email: email, Role: role})
		for _, n := range visible {
			read := " "
			if n.Read {
				read = "x"
			}
			fmt.Printf("[%s] %s  %s\n", read, n.Date, n.Message)
		}
		return s.Close()
	},
}
