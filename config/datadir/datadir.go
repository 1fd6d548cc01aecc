// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package datadir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codernix/ed25519-php-ext/config"
)

const baseDataDirKey = "EDSIGND_DATA"

const logDirKey = "EDSIGND_LOGDIR"

// Paths holds the directories a daemon instance works in.
type Paths struct {
	DataDir string
	LogDir  string
}

// InitializeDataDir resolves and loads the data directory. The config file
// is optional: when it is missing the defaults are used.
func InitializeDataDir(dataDirectory string, logDirectory string) (config.Local, Paths, error) {
	// first, ensure data directory is defined and valid
	dataDir := ResolveDataDir(dataDirectory)
	if len(dataDir) == 0 {
		return config.Local{}, Paths{}, fmt.Errorf("data directory not specified, use -d or set %s", baseDataDirKey)
	}
	// ensure path can be made absolute
	absolutePath, err := filepath.Abs(dataDir)
	if err != nil {
		return config.Local{}, Paths{}, err
	}
	// If data directory doesn't exist, we can't run
	if _, err := os.Stat(absolutePath); err != nil {
		return config.Local{}, Paths{}, err
	}
	cfg, err := config.LoadConfigFromDisk(absolutePath)
	if err != nil && !os.IsNotExist(err) {
		return config.Local{}, Paths{}, err
	}

	paths := Paths{
		DataDir: absolutePath,
		LogDir:  resolve(logDirectory, logDirKey, cfg.LogDir, absolutePath),
	}
	return cfg, paths, nil
}

func resolve(cli string, env string, cfg string, fallback string) string {
	if cli != "" {
		return cli
	}
	envValue := os.Getenv(env)
	if envValue != "" {
		return envValue
	}
	if cfg != "" {
		return cfg
	}
	return fallback
}

// ResolveDataDir figures out what data directory to use.
// If not specified on cmdline with '-d', look for default in environment.
func ResolveDataDir(dataDirectory string) string {
	if dataDirectory == "" {
		return os.Getenv(baseDataDirKey)
	}
	return dataDirectory
}
