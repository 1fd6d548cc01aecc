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
	"net/http"

	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib"
)

// Routes are the v1 signing routes
var Routes = lib.Routes{
	lib.Route{
		Name:        "keypair",
		Method:      http.MethodPost,
		Path:        "/keypair",
		HandlerFunc: Keypair,
	},

	lib.Route{
		Name:        "sign",
		Method:      http.MethodPost,
		Path:        "/sign",
		HandlerFunc: Sign,
	},

	lib.Route{
		Name:        "open",
		Method:      http.MethodPost,
		Path:        "/open",
		HandlerFunc: Open,
	},

	lib.Route{
		Name:        "open-batch",
		Method:      http.MethodPost,
		Path:        "/open/batch",
		HandlerFunc: OpenBatch,
	},
}
