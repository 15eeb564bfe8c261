// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads the YAML configuration settings which are
// required by different parts of the project, such as adapters or
// use cases. It is preferred to implement Config with primitive
// fields or other structs which are defined locally, not models or
// structs which are defined in lower layers, so other layers can
// change freely without affecting deployed configuration files.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/pgorczyca/carcat/pkg/adapter/db/postgres"
	"github.com/pgorczyca/carcat/pkg/adapter/restful/gin"
	"gopkg.in/yaml.v3"
)

// Config contains all settings of the carcat project.
type Config struct {
	Database Database `yaml:"database"` // PostgreSQL connection settings
	Web      Web      `yaml:"web"`      // HTTP listener settings
	Gin      Gin      `yaml:"gin"`      // Gin-Gonic instantiation settings
}

// Load reads the configuration file from the given path, unmarshals
// it, and fills the absent optional settings with their default
// values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}
	nil2Default(&c.Gin.Logger, true)
	nil2Default(&c.Gin.Recovery, true)
}

// nil2Default initializes an absent optional setting with its default
// value, so the rest of the program may dereference it freely.
func nil2Default[T any](setting **T, value T) {
	if *setting == nil {
		*setting = &value
	}
}

// Database contains the database related configuration settings.
type Database struct {
	Host     string `yaml:"host"`     // domain name or IP address of the DBMS server
	Port     int    `yaml:"port"`     // port number of the DBMS server
	Name     string `yaml:"name"`     // database name, like carcat
	User     string `yaml:"user"`     // database role to connect with
	Password string `yaml:"password"` // password of the database role
	SSLMode  string `yaml:"sslmode,omitempty"`
}

// URL builds the database connection URL based on the `d` settings.
func (d Database) URL() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `c` settings.
func (c *Config) ConnectionPool(ctx context.Context) (*postgres.Pool, error) {
	p, err := postgres.NewPool(ctx, c.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	return p, nil
}

// Web contains the HTTP listener configuration settings.
type Web struct {
	Host string `yaml:"host,omitempty"` // listen address, empty for all interfaces
	Port int    `yaml:"port"`           // listen port number
}

// Addr formats the `w` settings as a listen address for the engine.
func (w Web) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized; absent settings are filled with their
// default values by the Load function.
type Gin struct {
	Logger   *bool `yaml:"logger"`   // whether to register the gin.Logger() middleware
	Recovery *bool `yaml:"recovery"` // whether to register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}
