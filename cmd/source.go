// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"strings"

	"tables/cli/internal/config"
	"tables/cli/internal/keychain"
)

// Where a connection string came from, as shown by dbinfo.
const (
	sourceFlag        = "--url flag"
	sourceTablesEnv   = "TABLES_DSN environment variable"
	sourceDatabaseURL = "DATABASE_URL environment variable"
	sourceConfig      = "config file"
	sourceKeychain    = "OS keychain"
)

// dsnSource is a connection string and where it was found.
type dsnSource struct {
	DSN    string
	Origin string
}

// dsnSources are the places a connection string is looked up, in order.
type dsnSources struct {
	flag     string
	getenv   func(string) string
	config   config.Config
	keychain func() (string, error)
}

func defaultSources(cfg config.Config) dsnSources {
	return dsnSources{
		flag:   dsnFlag,
		getenv: os.Getenv,
		config: cfg,
		keychain: func() (string, error) {
			km, err := keychain.GetManager()
			if err != nil {
				return "", err
			}
			return km.LoadDSN()
		},
	}
}

// resolveDSN returns the first non-empty connection string. An empty result
// means nothing is configured.
func resolveDSN(s dsnSources) dsnSource {
	if v := strings.TrimSpace(s.flag); v != "" {
		return dsnSource{DSN: v, Origin: sourceFlag}
	}
	if s.getenv != nil {
		if v := strings.TrimSpace(s.getenv("TABLES_DSN")); v != "" {
			return dsnSource{DSN: v, Origin: sourceTablesEnv}
		}
		if v := strings.TrimSpace(s.getenv("DATABASE_URL")); v != "" {
			return dsnSource{DSN: v, Origin: sourceDatabaseURL}
		}
	}
	if v := strings.TrimSpace(s.config.DB.DSN); v != "" {
		return dsnSource{DSN: v, Origin: sourceConfig}
	}
	if s.keychain != nil {
		if v, err := s.keychain(); err == nil && strings.TrimSpace(v) != "" {
			return dsnSource{DSN: strings.TrimSpace(v), Origin: sourceKeychain}
		}
	}
	return dsnSource{}
}
