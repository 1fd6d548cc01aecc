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

package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib"
	"github.com/codernix/ed25519-php-ext/logging"
)

const (
	errFailedDecodingBody = "failed to decode request body"
	errRequestTooLarge    = "request body too large"
	errBatchTooLarge      = "batch exceeds the maximum size"
	errFailedKeypair      = "failed to generate keypair"
	errBatchNotCompleted  = "batch verification did not complete"
)

// returnError logs an internal message while returning the encoded response.
func returnError(ctx echo.Context, code int, internal error, external string, logger logging.Logger) error {
	logger.Info(internal)
	return ctx.JSON(code, lib.ErrorResponse{Message: external})
}

func badRequest(ctx echo.Context, internal error, external string, log logging.Logger) error {
	return returnError(ctx, http.StatusBadRequest, internal, external, log)
}

func internalError(ctx echo.Context, internal error, external string, log logging.Logger) error {
	return returnError(ctx, http.StatusInternalServerError, internal, external, log)
}

func serviceUnavailable(ctx echo.Context, internal error, external string, log logging.Logger) error {
	return returnError(ctx, http.StatusServiceUnavailable, internal, external, log)
}

// decodeError maps a failure to read the JSON body to a response.
func decodeError(ctx echo.Context, err error, log logging.Logger) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return returnError(ctx, http.StatusRequestEntityTooLarge, err, errRequestTooLarge, log)
	}
	return badRequest(ctx, err, errFailedDecodingBody, log)
}
