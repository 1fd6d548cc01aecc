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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codernix/ed25519-php-ext/crypto"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib"
	"github.com/codernix/ed25519-php-ext/daemon/edsignd/api/server/lib/middlewares"
)

func decodeBody(c echo.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Keypair is an httpHandler for route POST /v1/keypair
func Keypair(ctx lib.ReqContext, c echo.Context) error {
	kp, err := ctx.Signer.Keypair()
	if err != nil {
		ctx.Log.Errorf("keypair generation failed: %v", err)
		return internalError(c, err, errFailedKeypair, ctx.Log)
	}
	ctx.Metrics.KeypairGenerated()
	return c.JSON(http.StatusOK, KeypairResponse{
		PublicKey: kp.PublicKey[:],
		SecretKey: kp.SecretKey[:],
	})
}

// Sign is an httpHandler for route POST /v1/sign
func Sign(ctx lib.ReqContext, c echo.Context) error {
	var req SignRequest
	if err := decodeBody(c, &req); err != nil {
		return decodeError(c, err, ctx.Log)
	}
	sm, err := crypto.Sign(req.Message, req.SecretKey)
	if err != nil {
		return badRequest(c, err, err.Error(), ctx.Log)
	}
	ctx.Metrics.MessageSigned()
	return c.JSON(http.StatusOK, SignResponse{SignedMessage: sm})
}

// Open is an httpHandler for route POST /v1/open
func Open(ctx lib.ReqContext, c echo.Context) error {
	var req OpenRequest
	if err := decodeBody(c, &req); err != nil {
		return decodeError(c, err, ctx.Log)
	}
	msg, err := crypto.Open(req.SignedMessage, req.PublicKey)
	if errors.Is(err, crypto.ErrInvalidSignature) {
		ctx.Metrics.MessageOpened(false)
	}
	if err != nil {
		return badRequest(c, err, err.Error(), ctx.Log)
	}
	ctx.Metrics.MessageOpened(true)
	if msg == nil {
		msg = []byte{}
	}
	return c.JSON(http.StatusOK, OpenResponse{Message: msg})
}

// OpenBatch is an httpHandler for route POST /v1/open/batch
func OpenBatch(ctx lib.ReqContext, c echo.Context) error {
	var req OpenBatchRequest
	if err := decodeBody(c, &req); err != nil {
		return decodeError(c, err, ctx.Log)
	}
	if len(req.SignedMessages) > ctx.Config.MaxBatchSize || len(req.PublicKeys) > ctx.Config.MaxBatchSize {
		err := fmt.Errorf("batch of %d signed messages and %d public keys, limit %d",
			len(req.SignedMessages), len(req.PublicKeys), ctx.Config.MaxBatchSize)
		return returnError(c, http.StatusRequestEntityTooLarge, err, errBatchTooLarge, ctx.Log)
	}

	batchCtx, cancel := context.WithTimeout(c.Request().Context(), ctx.Config.BatchTimeout())
	defer cancel()
	outcomes, err := ctx.Opener.OpenBatch(batchCtx, decodeEntries(req.SignedMessages), decodeEntries(req.PublicKeys))
	switch {
	case errors.Is(err, crypto.ErrCountMismatch):
		return badRequest(c, err, err.Error(), ctx.Log)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return serviceUnavailable(c, err, errBatchNotCompleted, ctx.Log)
	case err != nil:
		ctx.Log.Errorf("batch verification failed: %v", err)
		return serviceUnavailable(c, err, errBatchNotCompleted, ctx.Log)
	}

	resp := OpenBatchResponse{Results: make([]BatchResult, len(outcomes))}
	valid := 0
	for i, outcome := range outcomes {
		resp.Results[i] = BatchResult(outcome)
		if outcome.Valid {
			valid++
		}
	}
	ctx.Metrics.BatchOpened(valid, len(outcomes)-valid)
	ctx.Log.With("request_id", middlewares.RequestID(c)).Debugf("batch of %d opened, %d valid", len(outcomes), valid)
	return c.JSON(http.StatusOK, resp)
}
