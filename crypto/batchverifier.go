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
	"github.com/hdevalence/ed25519consensus"
)

const minBatchVerifierAlloc = 16

type batchVerifyEntry struct {
	message      []byte
	publicKey    PublicKey
	signature    Signature
	failedChecks bool
}

// BatchVerifier enqueues detached signatures to be validated in batch.
// Entries failing the strict encoding checks are never handed to the batch
// equation; they are reported as failed by VerifyWithFeedback.
type BatchVerifier struct {
	entries      []batchVerifyEntry // used in VerifyWithFeedback to identify failed signatures
	failedChecks bool               // true if any entry failed non-canonical or small-order checks
	bv           ed25519consensus.BatchVerifier
}

// MakeBatchVerifier creates a BatchVerifier instance.
func MakeBatchVerifier() *BatchVerifier {
	return MakeBatchVerifierWithHint(minBatchVerifierAlloc)
}

// MakeBatchVerifierWithHint creates a BatchVerifier instance. This function pre-allocates
// amount of free space to enqueue signatures without expanding
func MakeBatchVerifierWithHint(hint int) *BatchVerifier {
	if hint < minBatchVerifierAlloc {
		hint = minBatchVerifierAlloc
	}
	return &BatchVerifier{
		entries: make([]batchVerifyEntry, 0, hint),
		bv:      ed25519consensus.NewPreallocatedBatchVerifier(hint),
	}
}

// EnqueueSignature enqueues a signature to be verified. The message is
// retained, not copied, until the verifier is discarded.
func (b *BatchVerifier) EnqueueSignature(publicKey PublicKey, message []byte, sig Signature) {
	failedChecks := !strictEncoding(ed25519PublicKey(publicKey), ed25519Signature(sig))

	b.entries = append(b.entries, batchVerifyEntry{
		message:      message,
		publicKey:    publicKey,
		signature:    sig,
		failedChecks: failedChecks,
	})

	if failedChecks {
		b.failedChecks = true
	} else {
		b.bv.Add(publicKey[:], message, sig[:])
	}
}

// GetNumberOfEnqueuedSignatures returns the number of signatures currently enqueued into the BatchVerifier
func (b *BatchVerifier) GetNumberOfEnqueuedSignatures() int {
	return len(b.entries)
}

// Verify verifies that all the signatures are valid. in that case nil is returned
func (b *BatchVerifier) Verify() error {
	if len(b.entries) == 0 {
		return nil
	}

	// Fail if any pre-checks failed or if batch verification fails
	if b.failedChecks || !b.batchEquationHolds() {
		return ErrBatchHasFailedSigs
	}
	return nil
}

// VerifyWithFeedback verifies that all the signatures are valid.
// if all sigs are valid, nil will be returned for err (failed will be nil)
// if some signatures are invalid, true will be set in failed at the corresponding indexes, and
// ErrBatchHasFailedSigs for err
func (b *BatchVerifier) VerifyWithFeedback() (failed []bool, err error) {
	if len(b.entries) == 0 {
		return nil, nil
	}

	if !b.failedChecks && b.batchEquationHolds() {
		return nil, nil
	}

	failed = make([]bool, len(b.entries))
	anyFailed := false
	for i := range b.entries {
		e := &b.entries[i]
		if e.failedChecks {
			failed[i] = true
		} else {
			failed[i] = !ed25519consensus.Verify(e.publicKey[:], e.message, e.signature[:])
		}
		anyFailed = anyFailed || failed[i]
	}
	if !anyFailed {
		// the batch equation and the single equations disagree only with
		// negligible probability; trust the single checks.
		return nil, nil
	}
	return failed, ErrBatchHasFailedSigs
}

// batchEquationHolds runs the batch equation over the entries which passed
// the encoding checks. A single entry skips the random linear combination.
func (b *BatchVerifier) batchEquationHolds() bool {
	if len(b.entries) == 1 && !b.entries[0].failedChecks {
		e := &b.entries[0]
		return ed25519consensus.Verify(e.publicKey[:], e.message, e.signature[:])
	}
	return b.bv.Verify()
}
