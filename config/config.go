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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/codernix/ed25519-php-ext/util/codecs"
)

// ConfigFilename is the name of the config.json file where we store per-instance settings
const ConfigFilename = "edsignd.json"

// LogFilename is the name of the live log file
const LogFilename = "edsignd.log"

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfigFromDisk returns a Local config structure based on merging the defaults
// with settings loaded from the config file from the custom dir.  If the custom file
// cannot be loaded, the default config is returned (with the error from loading the
// custom file).
func LoadConfigFromDisk(custom string) (c Local, err error) {
	return loadConfigFromFile(filepath.Join(custom, ConfigFilename))
}

func loadConfigFromFile(configFile string) (c Local, err error) {
	c = defaultLocal
	c, err = mergeConfigFromFile(configFile, c)
	if err != nil {
		return
	}
	if c.Version > defaultLocal.Version {
		return c, fmt.Errorf("config version %d is newer than the supported version %d", c.Version, defaultLocal.Version)
	}
	return
}

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	f, err := os.Open(configpath)
	if err != nil {
		return source, err
	}
	defer f.Close()

	err = loadConfig(f, &source)
	return source, err
}

func loadConfig(reader io.Reader, config *Local) error {
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	return dec.Decode(config)
}

// SaveToDisk writes the Local settings into a root/ConfigFilename file
func (cfg Local) SaveToDisk(root string) error {
	configpath := filepath.Join(root, ConfigFilename)
	filename := os.ExpandEnv(configpath)
	return cfg.SaveToFile(filename)
}

// SaveToFile saves the config to a specific filename, allowing overriding the default name
func (cfg Local) SaveToFile(filename string) error {
	var alwaysInclude []string
	alwaysInclude = append(alwaysInclude, "Version")
	return codecs.SaveNonDefaultValuesToFile(filename, cfg, defaultLocal, alwaysInclude, true)
}

// Validate checks the settings which have no usable meaning outside their range.
func (cfg Local) Validate() error {
	switch {
	case cfg.EndpointAddress == "":
		return fmt.Errorf("EndpointAddress must not be empty: %w", ErrInvalidConfig)
	case cfg.BaseLoggerDebugLevel > 5:
		return fmt.Errorf("BaseLoggerDebugLevel %d is above 5: %w", cfg.BaseLoggerDebugLevel, ErrInvalidConfig)
	case cfg.BatchParallelism < 0:
		return fmt.Errorf("BatchParallelism %d is negative: %w", cfg.BatchParallelism, ErrInvalidConfig)
	case cfg.BatchBacklogSize < 0:
		return fmt.Errorf("BatchBacklogSize %d is negative: %w", cfg.BatchBacklogSize, ErrInvalidConfig)
	case cfg.MaxBatchSize <= 0:
		return fmt.Errorf("MaxBatchSize %d must be positive: %w", cfg.MaxBatchSize, ErrInvalidConfig)
	case cfg.MaxRequestBytes <= 0:
		return fmt.Errorf("MaxRequestBytes %d must be positive: %w", cfg.MaxRequestBytes, ErrInvalidConfig)
	case cfg.BatchTimeoutSeconds <= 0:
		return fmt.Errorf("BatchTimeoutSeconds %d must be positive: %w", cfg.BatchTimeoutSeconds, ErrInvalidConfig)
	case cfg.RestReadTimeoutSeconds <= 0 || cfg.RestWriteTimeoutSeconds <= 0:
		return fmt.Errorf("REST timeouts must be positive: %w", ErrInvalidConfig)
	case cfg.DeadlockDetectionThreshold <= 0:
		return fmt.Errorf("DeadlockDetectionThreshold %d must be positive: %w", cfg.DeadlockDetectionThreshold, ErrInvalidConfig)
	}
	return nil
}

// BatchTimeout returns BatchTimeoutSeconds as a duration.
func (cfg Local) BatchTimeout() time.Duration {
	return time.Duration(cfg.BatchTimeoutSeconds) * time.Second
}

// RestReadTimeout returns RestReadTimeoutSeconds as a duration.
func (cfg Local) RestReadTimeout() time.Duration {
	return time.Duration(cfg.RestReadTimeoutSeconds) * time.Second
}

// RestWriteTimeout returns RestWriteTimeoutSeconds as a duration.
func (cfg Local) RestWriteTimeout() time.Duration {
	return time.Duration(cfg.RestWriteTimeoutSeconds) * time.Second
}
