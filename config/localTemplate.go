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

// Local holds the per-instance configuration settings for the signing daemon.
// !!! WARNING !!!
//
// These versioned struct tags need to be maintained CAREFULLY and treated
// like UNIVERSAL CONSTANTS - they should not be modified once committed.
//
// New fields may be added to the Local struct, along with a version tag
// denoting a new version. When doing so, also update defaultLocal in
// local_defaults.go.
//
// !!! WARNING !!!
type Local struct {
	// Version tracks the current version of the defaults so we can migrate old -> new
	// This is specifically important whenever we decide to change the default value
	// for an existing parameter. This field tag must be updated any time we add a new version.
	Version uint32 `version[0]:"0"`

	// EndpointAddress configures the address the REST API listens on. Specify an IP and port or just a port. For example, 127.0.0.1:0 will listen on a random port on the localhost.
	EndpointAddress string `version[0]:"127.0.0.1:8085"`

	// APIToken, when not empty, must be presented by every API request except /health, either in the X-Ed25519-API-Token header or as a bearer token.
	APIToken string `version[0]:""`

	// BaseLoggerDebugLevel specifies the logging level for edsignd. The levels range from 0 (critical error / silent) to 5 (debug / verbose). The default value is 4 (‘Info’ - fairly verbose).
	BaseLoggerDebugLevel uint32 `version[0]:"4"`

	// LogJSON switches the log output from text to JSON.
	LogJSON bool `version[0]:"false"`

	// LogDir is the directory edsignd.log is written to. An empty value uses the data directory.
	LogDir string `version[0]:""`

	// LogSizeLimit is the log file size limit in bytes. When set to 0 logs will be written to stderr.
	LogSizeLimit uint64 `version[0]:"1073741824"`

	// LogArchiveName is the name of the file the full log is moved to once LogSizeLimit is reached.
	LogArchiveName string `version[0]:"edsignd.archive.log"`

	// BatchParallelism is the number of workers verifying batch chunks. 0 uses the number of CPUs.
	BatchParallelism int `version[0]:"0"`

	// BatchBacklogSize is the number of batch chunks which may wait for a free worker. 0 uses BatchParallelism.
	BatchBacklogSize int `version[0]:"0"`

	// MaxBatchSize is the largest number of items accepted by a single batch request.
	MaxBatchSize int `version[0]:"4096"`

	// MaxRequestBytes limits the size of a request body.
	MaxRequestBytes int64 `version[0]:"10485760"`

	// BatchTimeoutSeconds bounds the time a batch request may wait for the worker pool.
	BatchTimeoutSeconds int `version[0]:"30"`

	// EnableMetrics serves Prometheus metrics on /metrics.
	EnableMetrics bool `version[0]:"true"`

	// RestReadTimeoutSeconds is passed to the API servers rest http.Server implementation.
	RestReadTimeoutSeconds int `version[0]:"15"`

	// RestWriteTimeoutSeconds is passed to the API servers rest http.Server implementation.
	RestWriteTimeoutSeconds int `version[0]:"120"`

	// DeadlockDetection controls the lock ordering checks: -1 disables them, 1 enables them, and 0 keeps the build default.
	DeadlockDetection int `version[0]:"0"`

	// DeadlockDetectionThreshold is the number of seconds a lock may be waited on before it is reported as a deadlock.
	DeadlockDetectionThreshold int `version[0]:"30"`
}
