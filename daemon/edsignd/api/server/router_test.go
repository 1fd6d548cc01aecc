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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codernix/ed25519-php-ext/config"
	"github.com/codernix/ed25519-php-ext/crypto"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/common"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib/middlewares"
	"github.com/codernix/ed25519-php-ext/logging"
	"github.com/codernix/ed25519-php-ext/test/partitiontest"
	"github.com/codernix/ed25519-php-ext/util/metrics"
)

const testToken = "0123456789abcdef"

func makeTestRouter(t *testing.T, mutate func(*config.Local)) http.Handler {
	cfg := config.GetDefaultLocal()
	cfg.APIToken = testToken
	if mutate != nil {
		mutate(&cfg)
	}
	return NewRouter(lib.ReqContext{
		Signer:  crypto.MakeSigner(nil),
		Opener:  crypto.MakeBatchOpener(nil),
		Metrics: metrics.MakeRegistry(),
		Log:     logging.TestingLog(t),
		Config:  cfg,
	})
}

func serve(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set(middlewares.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterRoutes(t *testing.T) {
	partitiontest.PartitionTest(t)

	router := makeTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		code   int
	}{
		{"health", http.MethodGet, "/health", "", "", http.StatusOK},
		{"versions", http.MethodGet, "/versions", "", "", http.StatusOK},
		{"keypair without token", http.MethodPost, "/v1/keypair", "", "", http.StatusUnauthorized},
		{"keypair bad token", http.MethodPost, "/v1/keypair", "nope", "", http.StatusUnauthorized},
		{"keypair", http.MethodPost, "/v1/keypair", testToken, "", http.StatusOK},
		{"sign bad key", http.MethodPost, "/v1/sign", testToken, `{"message":"","secret_key":""}`, http.StatusBadRequest},
		{"open short", http.MethodPost, "/v1/open", testToken, `{"signed_message":"","public_key":""}`, http.StatusBadRequest},
		{"batch empty", http.MethodPost, "/v1/open/batch", testToken, `{"signed_messages":[],"public_keys":[]}`, http.StatusOK},
		{"sign with GET", http.MethodGet, "/v1/sign", testToken, "", http.StatusMethodNotAllowed},
		{"unknown", http.MethodGet, "/v2/status", testToken, "", http.StatusNotFound},
		{"metrics", http.MethodGet, "/metrics", testToken, "", http.StatusOK},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(router, test.method, test.path, test.token, test.body)
			require.Equal(t, test.code, rec.Code, rec.Body.String())
			require.NotEmpty(t, rec.Header().Get(middlewares.RequestIDHeader))
		})
	}
}

func TestRouterVersions(t *testing.T) {
	partitiontest.PartitionTest(t)

	rec := serve(makeTestRouter(t, nil), http.MethodGet, "/versions", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp common.VersionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"v1"}, resp.Versions)
	require.Equal(t, config.GetCurrentVersion(), resp.Build)
}

func TestRouterSignOpen(t *testing.T) {
	partitiontest.PartitionTest(t)

	router := makeTestRouter(t, nil)
	rec := serve(router, http.MethodPost, "/v1/keypair", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var kp struct {
		PublicKey string `json:"public_key"`
		SecretKey string `json:"secret_key"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kp))

	rec = serve(router, http.MethodPost, "/v1/sign", testToken,
		`{"message":"aGVsbG8=","secret_key":"`+kp.SecretKey+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var signed struct {
		SignedMessage string `json:"signed_message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signed))

	rec = serve(router, http.MethodPost, "/v1/open", testToken,
		`{"signed_message":"`+signed.SignedMessage+`","public_key":"`+kp.PublicKey+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{"message":"aGVsbG8="}`, rec.Body.String())

	rec = serve(router, http.MethodPost, "/v1/open/batch", testToken,
		`{"signed_messages":["`+signed.SignedMessage+`", 7],"public_keys":["`+kp.PublicKey+`","`+kp.PublicKey+`"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{"results":["aGVsbG8=",false]}`, rec.Body.String())
}

func TestRouterWithoutToken(t *testing.T) {
	partitiontest.PartitionTest(t)

	router := makeTestRouter(t, func(cfg *config.Local) { cfg.APIToken = "" })
	rec := serve(router, http.MethodPost, "/v1/keypair", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterMetrics(t *testing.T) {
	partitiontest.PartitionTest(t)

	router := makeTestRouter(t, nil)
	require.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/v1/keypair", testToken, "").Code)

	rec := serve(router, http.MethodGet, "/metrics", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), metrics.CryptoKeypairsGeneratedTotal.Name+" 1")
	require.Contains(t, rec.Body.String(), metrics.APIRequestsTotal.Name)

	router = makeTestRouter(t, func(cfg *config.Local) { cfg.EnableMetrics = false })
	rec = serve(router, http.MethodGet, "/metrics", testToken, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterBodyLimit(t *testing.T) {
	partitiontest.PartitionTest(t)

	router := makeTestRouter(t, func(cfg *config.Local) { cfg.MaxRequestBytes = 64 })
	body := `{"message":"` + strings.Repeat("A", 128) + `","secret_key":""}`
	rec := serve(router, http.MethodPost, "/v1/sign", testToken, body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouterCORSPreflight(t *testing.T) {
	partitiontest.PartitionTest(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/sign", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	makeTestRouter(t, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), middlewares.TokenHeader)
}
