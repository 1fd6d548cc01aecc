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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/algorand/go-deadlock"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/codernix/ed25519-php-ext/config"
	"github.com/codernix/ed25519-php-ext/config/datadir"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd"
	"github.com/codernix/ed25519-php-ext/logging"
)

var (
	dataDirectory string
	logDirectory  string
	listenAddress string
	logLevel      string
	logToStderr   bool
	writeConfig   bool
	versionCheck  bool
)

var rootCmd = &cobra.Command{
	Use:   "edsignd",
	Short: "Ed25519 signing and verification daemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if versionCheck {
			fmt.Println(config.FormatVersionAndLicense())
			return nil
		}
		return run(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&dataDirectory, "datadir", "d", "", "Root edsignd data path (defaults to $EDSIGND_DATA)")
	rootCmd.Flags().StringVarP(&logDirectory, "logdir", "l", "", "Directory for edsignd.log (defaults to $EDSIGND_LOGDIR, then the data path)")
	rootCmd.Flags().StringVarP(&listenAddress, "listen", "a", "", "Override config.EndpointAddress (REST listening address) with ip:port")
	rootCmd.Flags().StringVar(&logLevel, "loglevel", "", "Override config.BaseLoggerDebugLevel by name (panic, fatal, error, warn, info, debug)")
	rootCmd.Flags().BoolVar(&writeConfig, "write-config", false, "Write the effective settings to edsignd.json in the data path and exit")
	rootCmd.Flags().BoolVarP(&logToStderr, "stderr", "o", false, "Write to stderr instead of edsignd.log by overriding config.LogSizeLimit to 0")
	rootCmd.Flags().BoolVarP(&versionCheck, "version", "v", false, "Display and write current build version and exit")
}

func applyDefaultDeadlock() error {
	// Apply the default deadlock setting before starting the server.
	// It will potentially be overridden by the config file DeadlockDetection setting
	switch strings.ToLower(config.DefaultDeadlock) {
	case "enable":
		deadlock.Opts.Disable = false
	case "disable":
		deadlock.Opts.Disable = true
	case "":
	default:
		return fmt.Errorf("DefaultDeadlock is somehow not set to an expected value (enable / disable): %s", config.DefaultDeadlock)
	}
	return nil
}

// applyOverrides folds the command line settings into cfg.
func applyOverrides(cfg *config.Local) error {
	if listenAddress != "" {
		cfg.EndpointAddress = listenAddress
	}
	if logToStderr {
		cfg.LogSizeLimit = 0
	}
	if logLevel != "" {
		lvl, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		cfg.BaseLoggerDebugLevel = uint32(lvl)
	}
	return cfg.Validate()
}

func run(ctx context.Context) error {
	cfg, paths, err := datadir.InitializeDataDir(dataDirectory, logDirectory)
	if err != nil {
		return err
	}
	if err = applyOverrides(&cfg); err != nil {
		return err
	}
	if writeConfig {
		if err = cfg.SaveToDisk(paths.DataDir); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", filepath.Join(paths.DataDir, config.ConfigFilename))
		return nil
	}

	// make sure this is the only instance running against this data directory
	fileLock := flock.New(filepath.Join(paths.DataDir, "edsignd.lock"))
	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("unexpected failure in establishing edsignd.lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to lock edsignd.lock; is an instance of edsignd already running in %s?", paths.DataDir)
	}
	defer fileLock.Unlock()

	if err = applyDefaultDeadlock(); err != nil {
		return err
	}

	s := edsignd.Server{
		RootPath: paths.DataDir,
		LogDir:   paths.LogDir,
	}
	if err = s.Initialize(cfg); err != nil {
		return err
	}
	log := logging.Base()

	deadlockState := "enabled"
	if deadlock.Opts.Disable {
		deadlockState = "disabled"
	}
	fmt.Fprintf(os.Stdout, "Deadlock detection is set to: %s (Default state is '%s')\n", deadlockState, config.DefaultDeadlock)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infof("received %v, exiting", context.Cause(gctx))
		return nil
	})
	if err = g.Wait(); err != nil {
		log.Errorf("edsignd exited: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
