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

package middlewares

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// TokenHeader defines the http header that includes the auth token
const TokenHeader = "X-Ed25519-API-Token"

// InvalidTokenMessage is the message set when an invalid / missing token is found.
const InvalidTokenMessage = "Invalid API Token"

// Paths served without a token.
var noneAuthPaths = []string{"/health", "/versions"}

// MakeAuth constructs the auth middleware function. A request passes when
// header, or a bearer Authorization header, carries one of tokens.
func MakeAuth(header string, tokens []string) echo.MiddlewareFunc {
	tokenBytes := make([][]byte, len(tokens))
	for i, token := range tokens {
		tokenBytes[i] = []byte(token)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			// OPTIONS responses never require auth
			if ctx.Request().Method == http.MethodOptions {
				return next(ctx)
			}

			for _, path := range noneAuthPaths {
				if ctx.Path() == path {
					return next(ctx)
				}
			}

			// Grab the apiToken from the HTTP header
			providedToken := []byte(ctx.Request().Header.Get(header))
			if len(providedToken) == 0 {
				// Accept tokens provided in a bearer token format.
				authentication := strings.SplitN(ctx.Request().Header.Get("Authorization"), " ", 2)
				if len(authentication) == 2 && strings.EqualFold("Bearer", authentication[0]) {
					providedToken = []byte(authentication[1])
				}
			}

			// Check the token in constant time
			valid := 0
			for _, token := range tokenBytes {
				valid |= subtle.ConstantTimeCompare(providedToken, token)
			}
			if valid == 1 {
				return next(ctx)
			}

			return echo.NewHTTPError(http.StatusUnauthorized, InvalidTokenMessage)
		}
	}
}
