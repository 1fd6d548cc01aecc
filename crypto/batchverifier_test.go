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
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codernix/ed25519-php-ext/test/partitiontest"
)

func TestBatchVerifierSingle(t *testing.T) {
	partitiontest.PartitionTest(t)
	// test expected success
	bv := MakeBatchVerifier()
	msg := randString()
	kp := makeTestKeyPair(t)
	sig := kp.SecretKey.SignBytes(msg)
	bv.EnqueueSignature(kp.PublicKey, msg, sig)
	require.NoError(t, bv.Verify())

	// test expected failure
	bv = MakeBatchVerifier()
	msg = randString()
	kp = makeTestKeyPair(t)
	sig = kp.SecretKey.SignBytes(msg)
	// break the signature:
	sig[0] = sig[0] + 1
	bv.EnqueueSignature(kp.PublicKey, msg, sig)
	require.Error(t, bv.Verify())
}

func TestBatchVerifierBulk(t *testing.T) {
	partitiontest.PartitionTest(t)
	for i := 1; i < 64*2+3; i++ {
		n := i
		bv := MakeBatchVerifierWithHint(n)

		for i := 0; i < n; i++ {
			msg := randString()
			kp := makeTestKeyPair(t)
			bv.EnqueueSignature(kp.PublicKey, msg, kp.SecretKey.SignBytes(msg))
		}
		require.Equal(t, n, bv.GetNumberOfEnqueuedSignatures())
		require.NoError(t, bv.Verify())
	}
}

func TestBatchVerifierBulkWithExpand(t *testing.T) {
	partitiontest.PartitionTest(t)
	n := 64
	bv := MakeBatchVerifierWithHint(0) // Start with no hint to test expansion
	kp := makeTestKeyPair(t)

	for i := 0; i < n; i++ {
		msg := randString()
		bv.EnqueueSignature(kp.PublicKey, msg, kp.SecretKey.SignBytes(msg))
	}
	require.NoError(t, bv.Verify())
}

func TestBatchVerifierWithInvalidSignature(t *testing.T) {
	partitiontest.PartitionTest(t)
	n := 64
	bv := MakeBatchVerifier()
	kp := makeTestKeyPair(t)

	for i := 0; i < n-1; i++ {
		msg := randString()
		bv.EnqueueSignature(kp.PublicKey, msg, kp.SecretKey.SignBytes(msg))
	}

	msg := randString()
	sig := kp.SecretKey.SignBytes(msg)
	sig[0] = sig[0] + 1
	bv.EnqueueSignature(kp.PublicKey, msg, sig)

	require.ErrorIs(t, bv.Verify(), ErrBatchHasFailedSigs)
}

func TestEmpty(t *testing.T) {
	partitiontest.PartitionTest(t)
	bv := MakeBatchVerifier()
	require.NoError(t, bv.Verify())

	failed, err := bv.VerifyWithFeedback()
	require.NoError(t, err)
	require.Nil(t, failed)
}

// TestBatchVerifierIndividualResults tests that VerifyWithFeedback
// returns the correct failed signature indexes
func TestBatchVerifierIndividualResults(t *testing.T) {
	partitiontest.PartitionTest(t)
	for i := 1; i < 64*2+3; i++ {
		n := i
		bv := MakeBatchVerifierWithHint(n)
		badSigs := make([]bool, n)
		hasBadSig := false
		for i := 0; i < n; i++ {
			msg := randString()
			kp := makeTestKeyPair(t)
			sig := kp.SecretKey.SignBytes(msg)
			if rand.Float32() > 0.5 {
				// make a bad sig
				sig[0] = sig[0] + 1
				badSigs[i] = true
				hasBadSig = true
			}
			bv.EnqueueSignature(kp.PublicKey, msg, sig)
		}
		require.Equal(t, n, bv.GetNumberOfEnqueuedSignatures())
		failed, err := bv.VerifyWithFeedback()
		if hasBadSig {
			require.ErrorIs(t, err, ErrBatchHasFailedSigs)
			require.Equal(t, badSigs, failed)
		} else {
			require.NoError(t, err)
			require.Nil(t, failed)
		}
	}
}

// TestBatchVerifierIndividualResultsAllValid tests that VerifyWithFeedback
// returns the correct failed signature indexes when all are valid
func TestBatchVerifierIndividualResultsAllValid(t *testing.T) {
	partitiontest.PartitionTest(t)
	for i := 1; i < 64*2+3; i++ {
		n := i
		bv := MakeBatchVerifierWithHint(n)
		for i := 0; i < n; i++ {
			msg := randString()
			kp := makeTestKeyPair(t)
			bv.EnqueueSignature(kp.PublicKey, msg, kp.SecretKey.SignBytes(msg))
		}
		require.Equal(t, n, bv.GetNumberOfEnqueuedSignatures())
		failed, err := bv.VerifyWithFeedback()
		require.NoError(t, err)
		require.Nil(t, failed)
	}
}

// TestBatchVerifierEncodingChecks enqueues keys and signatures which are
// rejected before the batch equation and checks that only they fail.
func TestBatchVerifierEncodingChecks(t *testing.T) {
	partitiontest.PartitionTest(t)

	kp := makeTestKeyPair(t)
	msg := randString()
	good := kp.SecretKey.SignBytes(msg)

	nonCanonicalR := good
	copy(nonCanonicalR[:32], negativeZeroMinusOne[:])

	var smallOrder PublicKey
	smallOrder[0] = 1

	bv := MakeBatchVerifier()
	bv.EnqueueSignature(kp.PublicKey, msg, good)
	bv.EnqueueSignature(kp.PublicKey, msg, nonCanonicalR)
	bv.EnqueueSignature(smallOrder, msg, good)
	bv.EnqueueSignature(kp.PublicKey, msg, good)

	require.ErrorIs(t, bv.Verify(), ErrBatchHasFailedSigs)
	failed, err := bv.VerifyWithFeedback()
	require.ErrorIs(t, err, ErrBatchHasFailedSigs)
	require.Equal(t, []bool{false, true, true, false}, failed)

	// only rejected entries: the batch equation never runs
	bv = MakeBatchVerifier()
	bv.EnqueueSignature(smallOrder, msg, good)
	failed, err = bv.VerifyWithFeedback()
	require.ErrorIs(t, err, ErrBatchHasFailedSigs)
	require.Equal(t, []bool{true}, failed)
}

func TestBatchVerifierGC(t *testing.T) {
	partitiontest.PartitionTest(t)

	const n = 128
	for i := 0; i < 20; i++ {
		t.Run("", func(t *testing.T) {
			t.Parallel()

			bv := MakeBatchVerifierWithHint(n)
			for i := 0; i < n; i++ {
				msg := randString()
				kp := makeTestKeyPair(t)
				bv.EnqueueSignature(kp.PublicKey, msg, kp.SecretKey.SignBytes(msg))
			}
			require.NoError(t, bv.Verify())

			runtime.GC()
		})
	}
}

// BenchmarkBatchVerifierBig with b.N over 1000 will report the expected performance
// gain as the batchsize increases. All sigs are valid.
func BenchmarkBatchVerifierBig(b *testing.B) {
	kp := makeTestKeyPair(b)
	for batchSize := 1; batchSize <= 96; batchSize++ {
		bv := MakeBatchVerifierWithHint(batchSize)
		for i := 0; i < batchSize; i++ {
			str := randString()
			bv.EnqueueSignature(kp.PublicKey, str, kp.SecretKey.SignBytes(str))
		}
		b.Run(fmt.Sprintf("running batchsize %d", batchSize), func(b *testing.B) {
			totalTransactions := b.N
			count := totalTransactions / batchSize
			if count*batchSize < totalTransactions {
				count++
			}
			for x := 0; x < count; x++ {
				require.NoError(b, bv.Verify())
			}
		})
	}
}

// BenchmarkBatchVerifierBigWithInvalid introduces invalid sigs to even numbered
// batch sizes. All the gains from batching disappear once a batch fails.
func BenchmarkBatchVerifierBigWithInvalid(b *testing.B) {
	kp := makeTestKeyPair(b)
	badSig := Signature{}
	for batchSize := 1; batchSize <= 96; batchSize++ {
		bv := MakeBatchVerifierWithHint(batchSize)
		sigs := make([]Signature, batchSize)
		for i := 0; i < batchSize; i++ {
			str := randString()
			if batchSize%2 == 0 && (i == 0 || rand.Float32() < 0.1) {
				bv.EnqueueSignature(kp.PublicKey, str, badSig)
				sigs[i] = badSig
			} else {
				sig := kp.SecretKey.SignBytes(str)
				bv.EnqueueSignature(kp.PublicKey, str, sig)
				sigs[i] = sig
			}
		}
		b.Run(fmt.Sprintf("running batchsize %d", batchSize), func(b *testing.B) {
			totalTransactions := b.N
			count := totalTransactions / batchSize
			if count*batchSize < totalTransactions {
				count++
			}
			for x := 0; x < count; x++ {
				failed, err := bv.VerifyWithFeedback()
				if err != nil {
					require.Len(b, failed, batchSize)
					for i, f := range failed {
						require.Equal(b, sigs[i] == badSig, f)
					}
				} else {
					require.Nil(b, failed)
				}
			}
		})
	}
}
