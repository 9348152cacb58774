package main

import (
	"github.com/urfave/cli/v2"

	"scadhub-backend/internal/seed"
	"scadhub-backend/internal/store"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Write the demo dataset through the store",
	Action: func(c *cli.Context) error {
		s, err := store.GetMainStore()
		if err != nil {
			return err
		}

		if err := seed.Run(s); err != nil {
			return err
		}
		return s.Close()
	},
}
