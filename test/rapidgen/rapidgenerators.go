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

package rapidgen

import (
	"fmt"

	"pgregory.net/rapid"
)

// Message generates an arbitrary message of at most maxLength bytes.
func Message(maxLength int) *rapid.Generator[[]byte] {
	return rapid.SliceOfN(rapid.Byte(), 0, maxLength)
}

// Seed generates a 32 byte key seed.
func Seed() *rapid.Generator[[32]byte] {
	return rapid.Custom(func(t *rapid.T) [32]byte {
		var seed [32]byte
		copy(seed[:], rapid.SliceOfN(rapid.Byte(), len(seed), len(seed)).Draw(t, "seed"))
		return seed
	})
}

// BitFlip picks a single bit inside a buffer of length n, as a byte index and
// a mask.
func BitFlip(n int) *rapid.Generator[BitPosition] {
	assertf(n > 0, "buffer length (%v) must be positive", n)
	return rapid.Custom(func(t *rapid.T) BitPosition {
		return BitPosition{
			Index: rapid.IntRange(0, n-1).Draw(t, "index"),
			Mask:  byte(1) << rapid.IntRange(0, 7).Draw(t, "bit"),
		}
	})
}

// BitPosition names one bit of a buffer.
type BitPosition struct {
	Index int
	Mask  byte
}

// Flip returns a copy of buf with the bit toggled.
func (p BitPosition) Flip(buf []byte) []byte {
	out := append([]byte(nil), buf...)
	out[p.Index] ^= p.Mask
	return out
}

func assertf(ok bool, format string, args ...interface{}) {
	if !ok {
		panic(fmt.Sprintf(format, args...))
	}
}
