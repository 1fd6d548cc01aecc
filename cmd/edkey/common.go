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

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codernix/ed25519-php-ext/crypto"
)

const (
	stdoutFilenameValue = "-"
	stdinFileNameValue  = "-"
)

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadKeyfile reads a seed written by generate and expands it to a keypair.
func loadKeyfile(keyfile string) (crypto.KeyPair, error) {
	seed, err := os.ReadFile(keyfile)
	if err != nil {
		return crypto.KeyPair{}, fmt.Errorf("cannot read key seed from %s: %w", keyfile, err)
	}
	kp, err := crypto.KeypairFromSeed(seed)
	if err != nil {
		return crypto.KeyPair{}, fmt.Errorf("cannot load key from %s: %w", keyfile, err)
	}
	return kp, nil
}

func writePrivateKey(keyfile string, seed crypto.Seed) error {
	err := os.WriteFile(keyfile, seed[:], 0600)
	if err != nil {
		return fmt.Errorf("cannot write key to %s: %w", keyfile, err)
	}
	return nil
}

// loadPublicKey reads a hex public key file. Only the length is checked, so
// a wrong-sized key reaches the verifier and is reported by it.
func loadPublicKey(pubkeyfile string) ([]byte, error) {
	data, err := readFile(pubkeyfile)
	if err != nil {
		return nil, fmt.Errorf("cannot read public key from %s: %w", pubkeyfile, err)
	}
	pk, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("cannot decode public key in %s: %w", pubkeyfile, err)
	}
	return pk, nil
}

func writePublicKey(pubkeyfile string, pk crypto.PublicKey) error {
	data := fmt.Sprintf("%s\n", hex.EncodeToString(pk[:]))
	err := writeFile(pubkeyfile, []byte(data), 0666)
	if err != nil {
		return fmt.Errorf("cannot write public key to %s: %w", pubkeyfile, err)
	}
	return nil
}

// writeFile is a wrapper of os.WriteFile which considers the special
// case of stdout filename
func writeFile(filename string, data []byte, perm os.FileMode) error {
	if filename == stdoutFilenameValue {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, perm)
}

// readFile is a wrapper of os.ReadFile which considers the
// special case of stdin filename
func readFile(filename string) ([]byte, error) {
	if filename == stdinFileNameValue {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}
