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
	"errors"
	"fmt"
)

// KeyPair holds a public key together with the secret key it was generated
// with. Both halves are produced at once and never change afterwards.
type KeyPair struct {
	PublicKey PublicKey
	SecretKey PrivateKey
}

// GenerateKeypair draws a fresh seed from rng and derives a keypair from it.
// The only failure is an entropy failure, reported as ErrEntropy.
func GenerateKeypair(rng RNG) (KeyPair, error) {
	public, secret, err := ed25519GenerateKey(rng)
	if err != nil {
		if !errors.Is(err, ErrEntropy) {
			err = fmt.Errorf("%v: %w", err, ErrEntropy)
		}
		return KeyPair{}, err
	}
	return KeyPair{PublicKey: PublicKey(public), SecretKey: PrivateKey(secret)}, nil
}

// Keypair generates a keypair using SystemRNG.
func Keypair() (KeyPair, error) {
	return GenerateKeypair(SystemRNG)
}

// KeypairFromSeed deterministically derives the keypair for a 32 byte seed.
func KeypairFromSeed(seed []byte) (KeyPair, error) {
	if len(seed) != SeedBytes {
		return KeyPair{}, fmt.Errorf("seed must be %d bytes, got %d: %w", SeedBytes, len(seed), ErrInvalidSeedLength)
	}
	public, secret := ed25519GenerateKeySeed(ed25519Seed(seed))
	return KeyPair{PublicKey: PublicKey(public), SecretKey: PrivateKey(secret)}, nil
}

// Sign returns the signed message signature || message. The secret key must be
// exactly SecretKeyBytes long. The signature is a deterministic function of
// the message and the key.
func Sign(message, secretKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeyBytes {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d: %w", SecretKeyBytes, len(secretKey), ErrInvalidKeyLength)
	}
	sig := ed25519Sign(ed25519PrivateKey(secretKey), message)

	signed := make([]byte, SignatureBytes+len(message))
	copy(signed, sig[:])
	copy(signed[SignatureBytes:], message)
	return signed, nil
}

// Open verifies a signed message against publicKey and returns a copy of the
// message that follows the signature. Nothing of the message is returned
// unless the signature is valid.
func Open(signedMessage, publicKey []byte) ([]byte, error) {
	if len(signedMessage) < SignatureBytes {
		return nil, fmt.Errorf("signed message must be at least %d bytes, got %d: %w", SignatureBytes, len(signedMessage), ErrTooShort)
	}
	if len(publicKey) != PublicKeyBytes {
		return nil, fmt.Errorf("public key must be %d bytes, got %d: %w", PublicKeyBytes, len(publicKey), ErrInvalidKeyLength)
	}

	sig, message := splitSignedMessage(signedMessage)
	if !ed25519Verify(ed25519PublicKey(publicKey), message, ed25519Signature(sig)) {
		return nil, ErrInvalidSignature
	}
	return bytes.Clone(message), nil
}

// splitSignedMessage cuts a signed message into its leading signature and the
// trailing message. The caller guarantees len(signedMessage) >= SignatureBytes.
// The returned message aliases signedMessage.
func splitSignedMessage(signedMessage []byte) (sig Signature, message []byte) {
	copy(sig[:], signedMessage[:SignatureBytes])
	return sig, signedMessage[SignatureBytes:]
}

// A Signer generates keypairs from an injected entropy source. The zero value
// is not usable; see MakeSigner.
type Signer struct {
	rng RNG
}

// MakeSigner returns a Signer drawing seeds from rng, or from SystemRNG if rng
// is nil.
func MakeSigner(rng RNG) *Signer {
	if rng == nil {
		rng = SystemRNG
	}
	return &Signer{rng: rng}
}

// Keypair generates a fresh keypair.
func (s *Signer) Keypair() (KeyPair, error) {
	return GenerateKeypair(s.rng)
}

// SignDetached returns only the signature over message.
func SignDetached(message, secretKey []byte) (Signature, error) {
	if len(secretKey) != SecretKeyBytes {
		return Signature{}, fmt.Errorf("secret key must be %d bytes, got %d: %w", SecretKeyBytes, len(secretKey), ErrInvalidKeyLength)
	}
	return Signature(ed25519Sign(ed25519PrivateKey(secretKey), message)), nil
}

// VerifyDetached checks a detached signature. Length problems are reported
// as errors, a signature which does not verify as ErrInvalidSignature.
func VerifyDetached(signature, message, publicKey []byte) error {
	if len(signature) != SignatureBytes {
		return fmt.Errorf("signature must be %d bytes, got %d: %w", SignatureBytes, len(signature), ErrInvalidSignature)
	}
	if len(publicKey) != PublicKeyBytes {
		return fmt.Errorf("public key must be %d bytes, got %d: %w", PublicKeyBytes, len(publicKey), ErrInvalidKeyLength)
	}
	if !ed25519Verify(ed25519PublicKey(publicKey), message, ed25519Signature(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
