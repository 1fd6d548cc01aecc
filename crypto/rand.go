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
	"crypto/rand"
	"fmt"
	"io"

	"github.com/algorand/go-deadlock"
	"golang.org/x/crypto/chacha20"
)

// RNG represents a source of entropy for key generation. Implementations must
// fill the whole buffer or return an error; a partially filled buffer is never
// used.
type RNG interface {
	RandBytes([]byte) error
}

type systemRNG struct{}

func (systemRNG) RandBytes(buf []byte) error {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return fmt.Errorf("%v: %w", err, ErrEntropy)
	}
	return nil
}

// SystemRNG implements the RNG interface using the operating system's
// cryptographically secure generator.
var SystemRNG RNG = systemRNG{}

// RandBytes fills the provided structure with a set of random bytes
func RandBytes(buf []byte) error {
	return SystemRNG.RandBytes(buf)
}

// deterministicRNG expands a fixed seed into a ChaCha20 keystream. Two
// generators made from the same seed produce the same byte sequence.
type deterministicRNG struct {
	mu     deadlock.Mutex
	stream *chacha20.Cipher
}

// MakeDeterministicRNG returns an RNG which replays the same byte sequence
// for a given seed. It is meant for tests and for reproducible key
// derivation; never use a guessable seed for real keys.
func MakeDeterministicRNG(seed [32]byte) RNG {
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed above
		panic(err)
	}
	return &deterministicRNG{stream: stream}
}

func (r *deterministicRNG) RandBytes(buf []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range buf {
		buf[i] = 0
	}
	r.stream.XORKeyStream(buf, buf)
	return nil
}
