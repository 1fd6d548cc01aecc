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

// Package server is the edsignd REST API.
//
// Byte strings in requests and replies are standard base64 JSON strings.
// When an API token is configured, every route except /health and
// /versions requires it in the X-Ed25519-API-Token header or as a bearer
// token.
package server

import (
	"github.com/labstack/echo/v4"

	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/common"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib/middlewares"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/v1"
)

const (
	apiV1Tag         = "v1"
	metricsRouteName = "metrics"
	metricsRoutePath = "/metrics"
)

// wrapCtx passes a common context to each request without a global variable.
func wrapCtx(ctx lib.ReqContext, handler lib.Handler) echo.HandlerFunc {
	return func(context echo.Context) error {
		return handler(ctx, context)
	}
}

// registerHandler registers a set of Routes to [router]. if [prefix] is not empty, it
// registers the routes under [prefix]
func registerHandlers(router *echo.Echo, prefix string, routes lib.Routes, ctx lib.ReqContext) {
	for _, route := range routes {
		r := router.Add(route.Method, prefix+route.Path, wrapCtx(ctx, route.HandlerFunc))
		r.Name = route.Name
	}
}

// NewRouter builds and returns a new router serving ctx.
func NewRouter(ctx lib.ReqContext) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewares.MakeRequestID())
	e.Use(middlewares.MakeLogger(ctx.Log))
	e.Use(middlewares.MakeMetrics(ctx.Metrics))
	e.Use(middlewares.MakeCORS(middlewares.TokenHeader))
	if ctx.Config.APIToken != "" {
		e.Use(middlewares.MakeAuth(middlewares.TokenHeader, []string{ctx.Config.APIToken}))
	}
	e.Use(middlewares.MakeBodyLimit(ctx.Config.MaxRequestBytes))

	// Registering common routes
	registerHandlers(e, "", common.Routes, ctx)

	// Registering v1 routes
	registerHandlers(e, "/"+apiV1Tag, v1.Routes, ctx)

	if ctx.Config.EnableMetrics {
		r := e.GET(metricsRoutePath, echo.WrapHandler(ctx.Metrics.Handler()))
		r.Name = metricsRouteName
	}

	return e
}
