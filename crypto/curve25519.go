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
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/hdevalence/ed25519consensus"
)

// Sizes of the fixed-length buffers exchanged with callers. They are fixed by
// the curve and hash parameters and never vary per call.
const (
	SignatureBytes = 64
	PublicKeyBytes = 32
	SecretKeyBytes = 64
	SeedBytes      = 32
)

func init() {
	// Check sizes of structs
	_ = [ed25519.SignatureSize]byte(ed25519Signature{})
	_ = [ed25519.PublicKeySize]byte(ed25519PublicKey{})
	_ = [ed25519.PrivateKeySize]byte(ed25519PrivateKey{})
	_ = [ed25519.SeedSize]byte(ed25519Seed{})
}

/* Classical signatures */
type ed25519Signature [SignatureBytes]byte
type ed25519PublicKey [PublicKeyBytes]byte
type ed25519PrivateKey [SecretKeyBytes]byte
type ed25519Seed [SeedBytes]byte

// A Signature is a cryptographic signature. It proves that a message was
// produced by a holder of a cryptographic secret.
type Signature ed25519Signature

// BlankSignature is an empty signature structure, containing nothing but zeroes
var BlankSignature = Signature{}

// PublicKey is an exported ed25519PublicKey
type PublicKey ed25519PublicKey

// PrivateKey is an exported ed25519PrivateKey. The first 32 bytes hold the
// seed and the last 32 bytes hold the matching public key.
type PrivateKey ed25519PrivateKey

// Seed holds the entropy needed to generate cryptographic keys.
type Seed ed25519Seed

func ed25519GenerateKeySeed(seed ed25519Seed) (public ed25519PublicKey, secret ed25519PrivateKey) {
	sk := ed25519.NewKeyFromSeed(seed[:])
	copy(secret[:], sk)
	copy(public[:], sk[SeedBytes:])
	return
}

func ed25519GenerateKey(rng RNG) (public ed25519PublicKey, secret ed25519PrivateKey, err error) {
	var seed ed25519Seed
	err = rng.RandBytes(seed[:])
	if err != nil {
		return
	}
	public, secret = ed25519GenerateKeySeed(seed)
	seed = ed25519Seed{}
	return
}

func ed25519Sign(secret ed25519PrivateKey, data []byte) (sig ed25519Signature) {
	copy(sig[:], ed25519.Sign(ed25519.PrivateKey(secret[:]), data))
	return
}

// ed25519Verify checks the signature strictly: the public key and R must be
// canonical encodings and the public key must not have small order. The
// remaining check is the cofactored ZIP-215 equation, which agrees with the
// batch equation used by BatchVerifier.
func ed25519Verify(public ed25519PublicKey, data []byte, sig ed25519Signature) bool {
	if !strictEncoding(public, sig) {
		return false
	}
	return ed25519consensus.Verify(public[:], data, sig[:])
}

// strictEncoding reports whether the public key and the R half of the
// signature pass the encoding rules applied before any curve arithmetic.
// Both inputs are public, so the variable-time checks leak nothing secret.
func strictEncoding(public ed25519PublicKey, sig ed25519Signature) bool {
	return isCanonicalPoint(public) && isCanonicalPoint([32]byte(sig[:32])) && !hasSmallOrder(public)
}

// SecretKeyToPublicKey derives a public key from a secret key. This is very
// efficient since ed25519 private keys literally contain their public key
func SecretKeyToPublicKey(secret PrivateKey) PublicKey {
	var pk PublicKey
	copy(pk[:], secret[SeedBytes:])
	return pk
}

// SecretKeyToSeed derives the seed from a secret key. This is very efficient
// since ed25519 private keys literally contain their seed
func SecretKeyToSeed(secret PrivateKey) Seed {
	var seed Seed
	copy(seed[:], secret[:SeedBytes])
	return seed
}

// SignBytes signs a message directly, without the signature prefix of a
// signed message.
func (sk PrivateKey) SignBytes(message []byte) Signature {
	return Signature(ed25519Sign(ed25519PrivateKey(sk), message))
}

// VerifyBytes checks a detached signature over message.
func (pk PublicKey) VerifyBytes(message []byte, sig Signature) bool {
	return ed25519Verify(ed25519PublicKey(pk), message, ed25519Signature(sig))
}

// ValidatePublicKey checks that pk is the canonical encoding of a curve point
// which does not have small order. Verification rejects any key failing this
// check, so it can be used to screen keys before they are handed out.
func ValidatePublicKey(pk PublicKey) error {
	if !isCanonicalPoint(pk) {
		return fmt.Errorf("non-canonical encoding: %w", ErrInvalidPublicKey)
	}
	if _, err := new(edwards25519.Point).SetBytes(pk[:]); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidPublicKey)
	}
	if hasSmallOrder(pk) {
		return fmt.Errorf("small order point: %w", ErrInvalidPublicKey)
	}
	return nil
}
