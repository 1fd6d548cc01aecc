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

package lib

import (
	"github.com/labstack/echo/v4"

	"github.com/codernix/ed25519-php-ext/config"
	"github.com/codernix/ed25519-php-ext/crypto"
	"github.com/codernix/ed25519-php-ext/logging"
	"github.com/codernix/ed25519-php-ext/util/metrics"
)

// ReqContext is passed to each of the handlers below via wrapCtx, allowing
// handlers to reach the signing service without a global variable.
type ReqContext struct {
	Signer  *crypto.Signer
	Opener  *crypto.BatchOpener
	Metrics *metrics.Registry
	Log     logging.Logger
	Config  config.Local
}

// Handler is a route handler with access to the request context.
type Handler func(ReqContext, echo.Context) error

// Route type description
type Route struct {
	Name        string
	Method      string
	Path        string
	HandlerFunc Handler
}

// Routes contains all routes
type Routes []Route

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
}
