// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the carcat
// project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database preparation actions.
//
//	./carcat [-c /path/of/main/config.yaml]          # start web server
//	./carcat db init [--seed] [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pgorczyca/carcat/pkg/adapter/config"
	"github.com/pgorczyca/carcat/pkg/adapter/restful/gin"
	"github.com/pgorczyca/carcat/pkg/adapter/restful/gin/routes"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "carcat",
	Short: "A car catalog management web service",
	Long: `A car catalog management web service which keeps a catalog
of car records in a PostgreSQL database and exposes them with a REST
API for listing, fetching, creating, merge-updating, and deleting
individual cars. The core use cases and models layers are kept
independent of the third-party dependent adapters layer, interacting
with them through a series of interfaces. Database interactions use
GORM and Pgx, while the REST APIs are implemented with the Gin Gonic
web framework.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	var e *gin.Engine = c.Gin.NewEngine()
	if err = routes.Register(e, p); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	if err = e.Run(c.Web.Addr()); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// By the way, default value is not necessarily a single path and may
// check several paths sequentially and take the highest priority one
// among the existing paths. For example, a user-specific path may take
// precedence over a file in /etc which is selected over a file in /usr.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
