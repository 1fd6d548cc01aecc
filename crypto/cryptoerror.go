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

import "errors"

// Precondition errors. They are returned before the signature primitive is
// invoked and always describe the shape of the input.
var (
	ErrInvalidKeyLength  = errors.New("invalid key length")
	ErrInvalidSeedLength = errors.New("invalid seed length")
	ErrTooShort          = errors.New("signed message is shorter than a signature")
	ErrCountMismatch     = errors.New("number of signed messages and public keys must match")
)

// ErrInvalidSignature is returned by Open when the signature does not match the
// message and public key. It is an expected outcome, not a system fault.
var ErrInvalidSignature = errors.New("invalid signature")

// ErrInvalidPublicKey is returned by ValidatePublicKey.
var ErrInvalidPublicKey = errors.New("invalid public key")

// ErrEntropy reports that the entropy source could not supply random bytes.
// It is fatal for the operation that triggered it and is never retried.
var ErrEntropy = errors.New("entropy source failure")

// ErrBatchHasFailedSigs is returned by BatchVerifier when at least one
// enqueued signature failed.
var ErrBatchHasFailedSigs = errors.New("At least one signature didn't pass verification")
