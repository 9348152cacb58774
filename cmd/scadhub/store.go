package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"scadhub-backend/internal/store"
)

var initCommand = &cli.Command{
	Name:  "init",
	Usage: "Open the store and declare every collection",
	Action: func(c *cli.Context) error {
		s, err := store.GetMainStore()
		if err != nil {
			return err
		}

		for _, col := range store.Collections {
			logrus.WithFields(logrus.Fields{
				"collection": col.Name,
				"key":        col.KeyField,
			}).Info("declared")
		}

		health := s.Health()
		logrus.WithField("status", health["status"]).Info("store ready")
		return s.Close()
	},
}

var cleanCommand = &cli.Command{
	Name:  "clean",
	Usage: "Drop every stored document",
	Action: func(c *cli.Context) error {
		// Warning message
		fmt.Println("⚠️ WARNING: This command will DROP the documents table and every stored collection.")
		fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

		// Ask for confirmation
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		input = strings.TrimSpace(strings.ToLower(input))

		if input != "yes" {
			fmt.Println("Operation cancelled.")
			return nil
		}

		s, err := store.GetMainStore()
		if err != nil {
			return err
		}

		if err := s.Exec(`DROP TABLE IF EXISTS documents CASCADE`).Error; err != nil {
			return fmt.Errorf("failed to execute drop command: %w", err)
		}

		fmt.Println("✅ All documents dropped successfully.")
		return s.Close()
	},
}
