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
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/codernix/ed25519-php-ext/config"
	"github.com/codernix/ed25519-php-ext/crypto"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib"
	"github.com/codernix/ed25519-php-ext/logging"
	"github.com/codernix/ed25519-php-ext/test/partitiontest"
	"github.com/codernix/ed25519-php-ext/util/execpool"
	"github.com/codernix/ed25519-php-ext/util/metrics"
)

type failingRNG struct{}

func (failingRNG) RandBytes([]byte) error {
	return errors.New("no entropy left")
}

func makeTestContext(t *testing.T) lib.ReqContext {
	return lib.ReqContext{
		Signer:  crypto.MakeSigner(crypto.MakeDeterministicRNG([32]byte{7})),
		Opener:  crypto.MakeBatchOpener(nil),
		Metrics: metrics.MakeRegistry(),
		Log:     logging.TestingLog(t),
		Config:  config.GetDefaultLocal(),
	}
}

func doRequest(t *testing.T, ctx lib.ReqContext, handler lib.Handler, body interface{}) *httptest.ResponseRecorder {
	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	case nil:
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(ctx, echo.New().NewContext(req, rec)))
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, code int, contains string) {
	require.Equal(t, code, rec.Code, rec.Body.String())
	var resp lib.ErrorResponse
	decodeResponse(t, rec, &resp)
	require.Contains(t, resp.Message, contains)
}

func makeKeypair(t *testing.T, ctx lib.ReqContext) KeypairResponse {
	rec := doRequest(t, ctx, Keypair, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var kp KeypairResponse
	decodeResponse(t, rec, &kp)
	return kp
}

func signMessage(t *testing.T, ctx lib.ReqContext, kp KeypairResponse, msg []byte) []byte {
	rec := doRequest(t, ctx, Sign, SignRequest{Message: msg, SecretKey: kp.SecretKey})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp SignResponse
	decodeResponse(t, rec, &resp)
	return resp.SignedMessage
}

func TestKeypair(t *testing.T) {
	partitiontest.PartitionTest(t)

	kp := makeKeypair(t, makeTestContext(t))
	require.Len(t, kp.PublicKey, crypto.PublicKeyBytes)
	require.Len(t, kp.SecretKey, crypto.SecretKeyBytes)
	require.Equal(t, kp.PublicKey, kp.SecretKey[crypto.SeedBytes:])

	// same entropy, same keys
	require.Equal(t, kp, makeKeypair(t, makeTestContext(t)))
}

func TestKeypairEntropyFailure(t *testing.T) {
	partitiontest.PartitionTest(t)

	ctx := makeTestContext(t)
	ctx.Signer = crypto.MakeSigner(failingRNG{})
	ctx.Log = logging.TestingLogWithoutFatalExit(t)
	rec := doRequest(t, ctx, Keypair, nil)
	requireError(t, rec, http.StatusInternalServerError, errFailedKeypair)
}

func TestSignOpen(t *testing.T) {
	partitiontest.PartitionTest(t)

	ctx := makeTestContext(t)
	kp := makeKeypair(t, ctx)
	msg := []byte("test message")
	sm := signMessage(t, ctx, kp, msg)
	require.Len(t, sm, len(msg)+crypto.SignatureBytes)
	require.Equal(t, msg, sm[crypto.SignatureBytes:])

	rec := doRequest(t, ctx, Open, OpenRequest{SignedMessage: sm, PublicKey: kp.PublicKey})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp OpenResponse
	decodeResponse(t, rec, &resp)
	require.Equal(t, msg, resp.Message)
}

func TestSignOpenEmptyMessage(t *testing.T) {
	partitiontest.PartitionTest(t)

	ctx := makeTestContext(t)
	kp := makeKeypair(t, ctx)
	sm := signMessage(t, ctx, kp, nil)
	require.Len(t, sm, crypto.SignatureBytes)

	rec := doRequest(t, ctx, Open, OpenRequest{SignedMessage: sm, PublicKey: kp.PublicKey})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":""}`, rec.Body.String())
}

func TestSignErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	ctx := makeTestContext(t)
	rec := doRequest(t, ctx, Sign, SignRequest{Message: []byte("x"), SecretKey: make([]byte, 32)})
	requireError(t, rec, http.StatusBadRequest, crypto.ErrInvalidKeyLength.Error())

	rec = doRequest(t, ctx, Sign, `{"message": "not base64!"}`)
	requireError(t, rec, http.StatusBadRequest, errFailedDecodingBody)

	rec = doRequest(t, ctx, Sign, `{"message": "", "unknown": 1}`)
	requireError(t, rec, http.StatusBadRequest, errFailedDecodingBody)
}

func TestOpenErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	ctx := makeTestContext(t)
	kp := makeKeypair(t, ctx)
	other := makeKeypair(t, ctx)
	sm := signMessage(t, ctx, kp, []byte("hello"))

	tampered := bytes.Clone(sm)
	tampered[len(tampered)-1] ^= 1

	tests := []struct {
		name string
		req  OpenRequest
		msg  string
	}{
		{"too short", OpenRequest{SignedMessage: sm[:63], PublicKey: kp.PublicKey}, crypto.ErrTooShort.Error()},
		{"short key", OpenRequest{SignedMessage: sm, PublicKey: kp.PublicKey[:31]}, crypto.ErrInvalidKeyLength.Error()},
		{"short before key", OpenRequest{SignedMessage: sm[:10], PublicKey: nil}, crypto.ErrTooShort.Error()},
		{"tampered", OpenRequest{SignedMessage: tampered, PublicKey: kp.PublicKey}, crypto.ErrInvalidSignature.Error()},
		{"wrong key", OpenRequest{SignedMessage: sm, PublicKey: other.PublicKey}, crypto.ErrInvalidSignature.Error()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := doRequest(t, ctx, Open, test.req)
			requireError(t, rec, http.StatusBadRequest, test.msg)
		})
	}
}

func b64(b []byte) json.RawMessage {
	return json.RawMessage(fmt.Sprintf("%q", base64.StdEncoding.EncodeToString(b)))
}

func TestOpenBatch(t *testing.T) {
	partitiontest.PartitionTest(t)

	ctx := makeTestContext(t)
	var req OpenBatchRequest
	var expected []BatchResult
	for i := 0; i < 5; i++ {
		kp := makeKeypair(t, ctx)
		msg := []byte(fmt.Sprintf("message %d", i))
		sm := signMessage(t, ctx, kp, msg)
		result := BatchResult{Valid: true, Message: msg}
		switch i {
		case 1:
			sm[0] ^= 0x80
			result = BatchResult{}
		case 3:
			// wrong JSON type on the public key side
			req.SignedMessages = append(req.SignedMessages, b64(sm))
			req.PublicKeys = append(req.PublicKeys, json.RawMessage(`12`))
			expected = append(expected, BatchResult{})
			continue
		}
		req.SignedMessages = append(req.SignedMessages, b64(sm))
		req.PublicKeys = append(req.PublicKeys, b64(kp.PublicKey))
		expected = append(expected, result)
	}

	rec := doRequest(t, ctx, OpenBatch, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp OpenBatchResponse
	decodeResponse(t, rec, &resp)
	if diff := cmp.Diff(expected, resp.Results); diff != "" {
		t.Fatalf("unexpected batch results (-want +got):\n%s", diff)
	}

	var raw struct {
		Results []json.RawMessage `json:"results"`
	}
	decodeResponse(t, rec, &raw)
	require.Equal(t, `false`, string(raw.Results[1]))
	require.Equal(t, `false`, string(raw.Results[3]))
	require.Equal(t, string(b64([]byte("message 0"))), string(raw.Results[0]))
}

func TestOpenBatchEmpty(t *testing.T) {
	partitiontest.PartitionTest(t)

	rec := doRequest(t, makeTestContext(t), OpenBatch, `{"signed_messages": [], "public_keys": []}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"results": []}`, rec.Body.String())

	rec = doRequest(t, makeTestContext(t), OpenBatch, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"results": []}`, rec.Body.String())
}

func TestOpenBatchErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	ctx := makeTestContext(t)
	rec := doRequest(t, ctx, OpenBatch, `{"signed_messages": ["", "", ""], "public_keys": ["", ""]}`)
	requireError(t, rec, http.StatusBadRequest, crypto.ErrCountMismatch.Error())

	ctx.Config.MaxBatchSize = 2
	rec = doRequest(t, ctx, OpenBatch, `{"signed_messages": ["", "", ""], "public_keys": ["", "", ""]}`)
	requireError(t, rec, http.StatusRequestEntityTooLarge, errBatchTooLarge)

	rec = doRequest(t, ctx, OpenBatch, `{"signed_messages": "abc"}`)
	requireError(t, rec, http.StatusBadRequest, errFailedDecodingBody)
}

func TestOpenBatchPooled(t *testing.T) {
	partitiontest.PartitionTest(t)

	backlog := execpool.MakeBacklog(nil, 0, execpool.LowPriority, t)
	defer backlog.Shutdown()

	ctx := makeTestContext(t)
	ctx.Opener = crypto.MakeBatchOpener(backlog)

	var req OpenBatchRequest
	var expected []BatchResult
	for i := 0; i < 100; i++ {
		kp := makeKeypair(t, ctx)
		msg := []byte(fmt.Sprintf("pooled %d", i))
		sm := signMessage(t, ctx, kp, msg)
		if i%7 == 0 {
			sm[crypto.SignatureBytes-1] ^= 1
			expected = append(expected, BatchResult{})
		} else {
			expected = append(expected, BatchResult{Valid: true, Message: msg})
		}
		req.SignedMessages = append(req.SignedMessages, b64(sm))
		req.PublicKeys = append(req.PublicKeys, b64(kp.PublicKey))
	}

	rec := doRequest(t, ctx, OpenBatch, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp OpenBatchResponse
	decodeResponse(t, rec, &resp)
	require.Empty(t, cmp.Diff(expected, resp.Results))
}

func TestOpenBatchCanceled(t *testing.T) {
	partitiontest.PartitionTest(t)

	backlog := execpool.MakeBacklog(nil, 0, execpool.LowPriority, t)
	defer backlog.Shutdown()

	ctx := makeTestContext(t)
	ctx.Opener = crypto.MakeBatchOpener(backlog)

	entries := make([]json.RawMessage, 64)
	for i := range entries {
		entries[i] = b64(make([]byte, crypto.SignatureBytes))
	}
	keys := make([]json.RawMessage, 64)
	for i := range keys {
		keys[i] = b64(make([]byte, crypto.PublicKeyBytes))
	}
	payload, err := json.Marshal(OpenBatchRequest{SignedMessages: entries, PublicKeys: keys})
	require.NoError(t, err)

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload)).WithContext(reqCtx)
	rec := httptest.NewRecorder()
	require.NoError(t, OpenBatch(ctx, echo.New().NewContext(req, rec)))
	requireError(t, rec, http.StatusServiceUnavailable, errBatchNotCompleted)
}

func TestDecodeEntry(t *testing.T) {
	partitiontest.PartitionTest(t)

	tests := []struct {
		raw        string
		wellFormed bool
		data       []byte
	}{
		{`"YQ=="`, true, []byte("a")},
		{` "YQ==" `, true, []byte("a")},
		{`""`, true, []byte{}},
		{`"not base64!"`, false, nil},
		{`null`, false, nil},
		{`12`, false, nil},
		{`false`, false, nil},
		{`["YQ=="]`, false, nil},
		{`{"a": 1}`, false, nil},
	}
	for _, test := range tests {
		entry := decodeEntry(json.RawMessage(test.raw))
		data, ok := entry.Bytes()
		require.Equal(t, test.wellFormed, ok, test.raw)
		if test.wellFormed {
			require.Equal(t, test.data, data, test.raw)
		}
	}
}

func TestBatchResultJSON(t *testing.T) {
	partitiontest.PartitionTest(t)

	out, err := json.Marshal([]BatchResult{{}, {Valid: true, Message: []byte("a")}, {Valid: true}})
	require.NoError(t, err)
	require.Equal(t, `[false,"YQ==",""]`, string(out))

	var back []BatchResult
	require.NoError(t, json.Unmarshal(out, &back))
	require.Empty(t, cmp.Diff([]BatchResult{{}, {Valid: true, Message: []byte("a")}, {Valid: true, Message: []byte{}}}, back))

	require.Error(t, json.Unmarshal([]byte(`[true]`), &back))
	require.True(t, strings.HasPrefix(string(b64(nil)), `"`))
}
