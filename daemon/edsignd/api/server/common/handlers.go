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

package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codernix/ed25519-php-ext/config"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib"
)

// VersionsResponse lists the API versions served and the build running them.
type VersionsResponse struct {
	Versions []string       `json:"versions"`
	Build    config.Version `json:"build"`
}

// HealthCheck is an httpHandler for route GET /health
func HealthCheck(ctx lib.ReqContext, c echo.Context) error {
	return c.JSON(http.StatusOK, nil)
}

// VersionsHandler is an httpHandler for route GET /versions
func VersionsHandler(ctx lib.ReqContext, c echo.Context) error {
	return c.JSON(http.StatusOK, VersionsResponse{
		Versions: []string{"v1"},
		Build:    config.GetCurrentVersion(),
	})
}
