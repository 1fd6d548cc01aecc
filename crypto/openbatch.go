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

package crypto

import (
	"bytes"
	"context"
	"fmt"

	"github.com/codernix/ed25519-php-ext/util/execpool"
)

// minChunkSize is the smallest number of items handed to a single pool task.
// Smaller chunks cost more in scheduling than the batch equation saves.
const minChunkSize = 16

// A BatchEntry is one element of a batch request: either a byte string, or a
// value of some other kind which can never verify.
type BatchEntry struct {
	data       []byte
	wellFormed bool
}

// WellFormed wraps a byte string as a batch entry.
func WellFormed(b []byte) BatchEntry {
	return BatchEntry{data: b, wellFormed: true}
}

// Malformed returns an entry standing for a value which is not a byte string.
func Malformed() BatchEntry {
	return BatchEntry{}
}

// Bytes returns the wrapped byte string, and false for a malformed entry.
func (e BatchEntry) Bytes() ([]byte, bool) {
	return e.data, e.wellFormed
}

// EntriesFromBytes wraps every element of bs as a well-formed entry.
func EntriesFromBytes(bs [][]byte) []BatchEntry {
	entries := make([]BatchEntry, len(bs))
	for i, b := range bs {
		entries[i] = WellFormed(b)
	}
	return entries
}

// An Outcome is the result for one batch item. The zero value is Invalid.
type Outcome struct {
	Valid bool
	// Message is a copy of the verified message; nil unless Valid.
	Message []byte
}

// batchItem is an item which passed the shape checks and is ready for the
// signature equation.
type batchItem struct {
	index     int
	publicKey PublicKey
	signature Signature
	message   []byte
}

// prepareBatchItem applies the per-item shape checks. ok is false when the
// item is Invalid without touching the curve.
func prepareBatchItem(index int, signedMessage, publicKey BatchEntry) (item batchItem, ok bool) {
	sm, smOk := signedMessage.Bytes()
	pk, pkOk := publicKey.Bytes()
	if !smOk || !pkOk || len(sm) < SignatureBytes || len(pk) != PublicKeyBytes {
		return batchItem{}, false
	}
	item.index = index
	item.publicKey = PublicKey(pk)
	item.signature, item.message = splitSignedMessage(sm)
	return item, true
}

// openChunk verifies items and writes their outcomes. Every item's index must
// point into outcomes, and no two chunks may share an index.
func openChunk(items []batchItem, outcomes []Outcome) {
	if len(items) == 0 {
		return
	}
	bv := MakeBatchVerifierWithHint(len(items))
	for i := range items {
		bv.EnqueueSignature(items[i].publicKey, items[i].message, items[i].signature)
	}
	failed, _ := bv.VerifyWithFeedback()
	for i := range items {
		if failed != nil && failed[i] {
			continue
		}
		outcomes[items[i].index] = Outcome{Valid: true, Message: bytes.Clone(items[i].message)}
	}
}

func prepareBatch(signedMessages, publicKeys []BatchEntry) ([]batchItem, []Outcome, error) {
	if len(signedMessages) != len(publicKeys) {
		return nil, nil, fmt.Errorf("%d signed messages, %d public keys: %w", len(signedMessages), len(publicKeys), ErrCountMismatch)
	}
	outcomes := make([]Outcome, len(signedMessages))
	items := make([]batchItem, 0, len(signedMessages))
	for i := range signedMessages {
		if item, ok := prepareBatchItem(i, signedMessages[i], publicKeys[i]); ok {
			items = append(items, item)
		}
	}
	return items, outcomes, nil
}

// OpenBatch verifies signedMessages[i] against publicKeys[i] for every i and
// returns one Outcome per item, in input order. A bad item never affects the
// outcome of another. The only error is ErrCountMismatch, when the two
// sequences differ in length.
func OpenBatch(signedMessages, publicKeys []BatchEntry) ([]Outcome, error) {
	items, outcomes, err := prepareBatch(signedMessages, publicKeys)
	if err != nil {
		return nil, err
	}
	openChunk(items, outcomes)
	return outcomes, nil
}

// A BatchOpener spreads batch verification over an execution pool.
type BatchOpener struct {
	pool execpool.BacklogPool
}

// MakeBatchOpener creates a BatchOpener. A nil pool verifies on the calling
// goroutine.
func MakeBatchOpener(pool execpool.BacklogPool) *BatchOpener {
	return &BatchOpener{pool: pool}
}

type chunkTask struct {
	items    []batchItem
	outcomes []Outcome
}

func openChunkTask(arg interface{}) interface{} {
	t := arg.(chunkTask)
	openChunk(t.items, t.outcomes)
	return nil
}

// OpenBatch behaves as the package level OpenBatch. Items are split into
// contiguous chunks verified in parallel; each chunk writes only the outcome
// slots of its own items. ctx bounds the wait for the pool to accept and run
// the chunks, and its error is returned if it expires first.
func (o *BatchOpener) OpenBatch(ctx context.Context, signedMessages, publicKeys []BatchEntry) ([]Outcome, error) {
	items, outcomes, err := prepareBatch(signedMessages, publicKeys)
	if err != nil {
		return nil, err
	}
	if o.pool == nil || len(items) <= minChunkSize {
		openChunk(items, outcomes)
		return outcomes, nil
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	chunkSize := (len(items) + o.pool.GetParallelism() - 1) / o.pool.GetParallelism()
	if chunkSize < minChunkSize {
		chunkSize = minChunkSize
	}
	numChunks := (len(items) + chunkSize - 1) / chunkSize
	// buffered so that workers never block on a caller which gave up
	done := make(chan interface{}, numChunks)
	enqueued := 0
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		err = o.pool.EnqueueBacklog(ctx, openChunkTask, chunkTask{items: items[start:end], outcomes: outcomes}, done)
		if err != nil {
			return nil, err
		}
		enqueued++
	}
	for ; enqueued > 0; enqueued-- {
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return outcomes, nil
}
