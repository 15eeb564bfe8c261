// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/pgorczyca/carcat/pkg/adapter/config"
	"github.com/pgorczyca/carcat/pkg/adapter/db/postgres/schema"
	"github.com/pgorczyca/carcat/pkg/core/repo"
	"github.com/spf13/cobra"
)

var seedDemoData bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the cars table",
	Long: `Initialize the cars table in the configured database,
creating it if it does not exist yet. The database connection
information are read from the config file. With the --seed flag, a
demo data set is also inserted, unless the table already contains
any record, so re-running this command does not duplicate records.
The whole initialization runs in one transaction and either settles
completely or leaves the database untouched.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

func initDB(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			s := schema.New(tx)
			if err := s.CreateSchema(ctx); err != nil {
				return fmt.Errorf("creating schema: %w", err)
			}
			if !seedDemoData {
				return nil
			}
			if err := s.SeedDemoData(ctx); err != nil {
				return fmt.Errorf("seeding demo data: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("initializing DB: %w", err)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVar(
		&seedDemoData, "seed", false, "insert the demo data set",
	)
	dbCmd.AddCommand(initCmd)
}
