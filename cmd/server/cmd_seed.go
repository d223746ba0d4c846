package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bitebasket/bitebasket/config"
	"github.com/bitebasket/bitebasket/database/seeders"
	"github.com/bitebasket/bitebasket/pkg/database"
)

// bitebasket seed: run all registered database seeders.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := database.Connect(ctx)
		if err != nil {
			return err
		}
		defer database.Disconnect(context.Background(), db) //nolint:errcheck

		if err := database.EnsureIndexes(ctx, db); err != nil {
			return err
		}

		fmt.Println("Seeding database…")
		return seeders.RunAll(ctx, db)
	},
}
