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

var defaultLocal = Local{
	Version:                    0,
	APIToken:                   "",
	BaseLoggerDebugLevel:       4,
	BatchBacklogSize:           0,
	BatchParallelism:           0,
	BatchTimeoutSeconds:        30,
	DeadlockDetection:          0,
	DeadlockDetectionThreshold: 30,
	EnableMetrics:              true,
	EndpointAddress:            "127.0.0.1:8085",
	LogArchiveName:             "edsignd.archive.log",
	LogDir:                     "",
	LogJSON:                    false,
	LogSizeLimit:               1073741824,
	MaxBatchSize:               4096,
	MaxRequestBytes:            10485760,
	RestReadTimeoutSeconds:     15,
	RestWriteTimeoutSeconds:    120,
}
