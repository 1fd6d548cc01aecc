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

	"github.com/spf13/cobra"

	"github.com/codernix/ed25519-php-ext/crypto"
	"github.com/codernix/ed25519-php-ext/util"
)

var generateKeyfile string
var generatePubkeyfile string
var generateSeed string

func init() {
	generateCmd.Flags().StringVarP(&generateKeyfile, "keyfile", "f", "", "Private key filename")
	generateCmd.Flags().StringVarP(&generatePubkeyfile, "pubkeyfile", "p", "", "Public key filename")
	generateCmd.Flags().StringVar(&generateSeed, "seed", "", "Hex encoded 32 byte seed to derive the key from")
	generateCmd.MarkFlagRequired("keyfile")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate key",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(generateKey(os.Stdout, generateKeyfile, generatePubkeyfile, generateSeed))
	},
}

func generateKey(out io.Writer, keyfile, pubkeyfile, seedHex string) error {
	if util.FileExists(keyfile) {
		return fmt.Errorf("key file %s already exists, not overwriting", keyfile)
	}

	var kp crypto.KeyPair
	var err error
	if seedHex != "" {
		seed, decodeErr := hex.DecodeString(seedHex)
		if decodeErr != nil {
			return fmt.Errorf("cannot decode seed: %w", decodeErr)
		}
		kp, err = crypto.KeypairFromSeed(seed)
	} else {
		kp, err = crypto.Keypair()
	}
	if err != nil {
		return err
	}

	if err = writePrivateKey(keyfile, crypto.SecretKeyToSeed(kp.SecretKey)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Public key: %s\n", hex.EncodeToString(kp.PublicKey[:]))

	if pubkeyfile != "" {
		return writePublicKey(pubkeyfile, kp.PublicKey)
	}
	return nil
}
