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
	"encoding/json"

	"github.com/codernix/ed25519-php-ext/crypto"
)

// Byte fields travel as standard base64 strings.

// KeypairResponse is the reply of POST /v1/keypair.
type KeypairResponse struct {
	PublicKey []byte `json:"public_key"`
	SecretKey []byte `json:"secret_key"`
}

// SignRequest is the body of POST /v1/sign.
type SignRequest struct {
	Message   []byte `json:"message"`
	SecretKey []byte `json:"secret_key"`
}

// SignResponse is the reply of POST /v1/sign.
type SignResponse struct {
	SignedMessage []byte `json:"signed_message"`
}

// OpenRequest is the body of POST /v1/open.
type OpenRequest struct {
	SignedMessage []byte `json:"signed_message"`
	PublicKey     []byte `json:"public_key"`
}

// OpenResponse is the reply of POST /v1/open.
type OpenResponse struct {
	Message []byte `json:"message"`
}

// OpenBatchRequest is the body of POST /v1/open/batch. Elements are kept
// raw so that values of the wrong JSON type become malformed entries rather
// than failing the whole request.
type OpenBatchRequest struct {
	SignedMessages []json.RawMessage `json:"signed_messages"`
	PublicKeys     []json.RawMessage `json:"public_keys"`
}

// OpenBatchResponse is the reply of POST /v1/open/batch.
type OpenBatchResponse struct {
	Results []BatchResult `json:"results"`
}

// BatchResult encodes an outcome as the base64 message, or false.
type BatchResult crypto.Outcome

// MarshalJSON implements json.Marshaler
func (r BatchResult) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("false"), nil
	}
	msg := r.Message
	if msg == nil {
		msg = []byte{}
	}
	return json.Marshal(msg)
}

// UnmarshalJSON implements json.Unmarshaler
func (r *BatchResult) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("false")) {
		*r = BatchResult{}
		return nil
	}
	var msg []byte
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	if msg == nil {
		msg = []byte{}
	}
	*r = BatchResult{Valid: true, Message: msg}
	return nil
}

// decodeEntry turns one raw batch element into an entry. Only a JSON string
// holding valid base64 is well formed.
func decodeEntry(raw json.RawMessage) crypto.BatchEntry {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return crypto.Malformed()
	}
	var b []byte
	if err := json.Unmarshal(raw, &b); err != nil {
		return crypto.Malformed()
	}
	if b == nil {
		b = []byte{}
	}
	return crypto.WellFormed(b)
}

func decodeEntries(raws []json.RawMessage) []crypto.BatchEntry {
	entries := make([]crypto.BatchEntry, len(raws))
	for i, raw := range raws {
		entries[i] = decodeEntry(raw)
	}
	return entries
}
