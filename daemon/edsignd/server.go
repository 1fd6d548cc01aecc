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

package edsignd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/algorand/go-deadlock"
	"golang.org/x/sync/errgroup"

	"github.com/codernix/ed25519-php-ext/config"
	"github.com/codernix/ed25519-php-ext/crypto"
	apiServer "github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib"
	"github.com/codernix/ed25519-php-ext/logging"
	"github.com/codernix/ed25519-php-ext/util/execpool"
	"github.com/codernix/ed25519-php-ext/util/metrics"
)

// maxHeaderBytes must have enough room to hold an api token
const maxHeaderBytes = 4096

// shutdownTimeout bounds the wait for in-flight requests on shutdown.
const shutdownTimeout = 10 * time.Second

const (
	pidFilename = "edsignd.pid"
	netFilename = "edsignd.net"
)

// Server represents an instance of the REST API HTTP server
type Server struct {
	RootPath string
	LogDir   string

	pidFile   string
	netFile   string
	log       logging.Logger
	cfg       config.Local
	logWriter io.Closer
	metrics   *metrics.Registry
	pool      execpool.ExecutionPool
	backlog   execpool.BacklogPool
	listener  net.Listener
	server    *http.Server
	stopOnce  sync.Once
}

// Initialize sets up logging, the deadlock detector and the verification pool
func (s *Server) Initialize(cfg config.Local) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.log = logging.Base()

	logDir := s.LogDir
	if logDir == "" {
		logDir = s.RootPath
	}
	var logWriter io.Writer
	if cfg.LogSizeLimit > 0 {
		liveLog := filepath.Join(logDir, config.LogFilename)
		archive := filepath.Join(logDir, cfg.LogArchiveName)
		fmt.Println("Logging to: ", liveLog)
		cyclic, err := logging.MakeCyclicFileWriter(liveLog, archive, cfg.LogSizeLimit)
		if err != nil {
			return fmt.Errorf("Initialize() cannot open log file: %w", err)
		}
		s.logWriter = cyclic
		logWriter = cyclic
	} else {
		fmt.Println("Logging to: stderr")
		logWriter = os.Stderr
	}
	s.log.SetOutput(logWriter)
	if cfg.LogJSON {
		s.log.SetJSONFormatter()
	}
	s.log.SetLevel(logging.Level(cfg.BaseLoggerDebugLevel))
	setupDeadlockLogger()

	// configure the deadlock detector library
	switch {
	case cfg.DeadlockDetection > 0:
		// Explicitly enabled deadlock detection
		deadlock.Opts.Disable = false

	case cfg.DeadlockDetection < 0:
		// Explicitly disabled deadlock detection
		deadlock.Opts.Disable = true

	case cfg.DeadlockDetection == 0:
		// Default setting - the build decides
	}
	if !deadlock.Opts.Disable {
		deadlock.Opts.DeadlockTimeout = time.Second * time.Duration(cfg.DeadlockDetectionThreshold)
	}

	s.log.Infoln("++++++++++++++++++++++++++++++++++++++++")
	s.log.Infof("Logging Starting: %s", config.GetCurrentVersion())
	s.log.Infoln("++++++++++++++++++++++++++++++++++++++++")

	s.metrics = metrics.MakeRegistry()
	s.pool = execpool.MakePoolWithParallelism(s, cfg.BatchParallelism)
	s.backlog = execpool.MakeBacklog(s.pool, cfg.BatchBacklogSize, execpool.LowPriority, s)
	s.log.Infof("batch verification on %d workers", s.pool.GetParallelism())

	// When a caller to logging uses Fatal, we want to stop the server before os.Exit is called.
	logging.RegisterExitHandler(s.Stop)

	return nil
}

// Listen opens the REST listener and writes the pid and net files. It returns
// the address actually bound, which differs from EndpointAddress for port 0.
func (s *Server) Listen() (net.Addr, error) {
	addr := s.cfg.EndpointAddress
	if addr == "" {
		addr = ":http"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not listen on %s: %w", addr, err)
	}
	s.listener = listener

	// Set up files for our PID and our listening address
	s.pidFile = filepath.Join(s.RootPath, pidFilename)
	s.netFile = filepath.Join(s.RootPath, netFilename)
	err = os.WriteFile(s.pidFile, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0644)
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("pidfile error: %w", err)
	}
	err = os.WriteFile(s.netFile, []byte(fmt.Sprintf("%s\n", listener.Addr())), 0644)
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("netfile error: %w", err)
	}
	return listener.Addr(), nil
}

// Serve runs the REST API on the listener opened by Listen until ctx is
// done, then shuts it down gracefully and stops the server.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("Serve() called before Listen()")
	}
	defer s.Stop()

	router := apiServer.NewRouter(lib.ReqContext{
		Signer:  crypto.MakeSigner(crypto.SystemRNG),
		Opener:  crypto.MakeBatchOpener(s.backlog),
		Metrics: s.metrics,
		Log:     s.log,
		Config:  s.cfg,
	})
	s.server = &http.Server{
		Addr:           s.listener.Addr().String(),
		Handler:        router,
		ReadTimeout:    s.cfg.RestReadTimeout(),
		WriteTimeout:   s.cfg.RestWriteTimeout(),
		MaxHeaderBytes: maxHeaderBytes,
	}
	s.log.Infof("REST API serving on %s", s.listener.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.server.Serve(s.listener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down REST API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Start listens and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	if _, err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Stop releases the verification pool and the service files. It is safe to
// call more than once.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.server != nil {
			s.server.Close()
		} else if s.listener != nil {
			s.listener.Close()
		}
		if s.backlog != nil {
			s.backlog.Shutdown()
		}
		if s.pool != nil {
			s.pool.Shutdown()
		}
		if s.pidFile != "" {
			os.Remove(s.pidFile)
		}
		if s.netFile != "" {
			os.Remove(s.netFile)
		}
		if s.log != nil {
			s.log.Info("edsignd stopped")
		}
		if s.logWriter != nil {
			s.log.SetOutput(os.Stderr)
			s.logWriter.Close()
		}
	})
}
