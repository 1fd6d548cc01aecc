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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codernix/ed25519-php-ext/crypto"
)

var openPubkeyfile string
var openInfile string
var openOutfile string

func init() {
	openCmd.Flags().StringVarP(&openPubkeyfile, "pubkeyfile", "p", "", "Public key filename")
	openCmd.Flags().StringVarP(&openInfile, "infile", "i", "", "Signed message ('-' for stdin)")
	openCmd.Flags().StringVarP(&openOutfile, "outfile", "o", "", "Verified message output ('-' for stdout)")
	openCmd.MarkFlagRequired("pubkeyfile")
	openCmd.MarkFlagRequired("infile")
	openCmd.MarkFlagRequired("outfile")
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Verify a signed message and write the message it carries",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(openFile(openPubkeyfile, openInfile, openOutfile))
	},
}

func openFile(pubkeyfile, infile, outfile string) error {
	pk, err := loadPublicKey(pubkeyfile)
	if err != nil {
		return err
	}
	sm, err := readFile(infile)
	if err != nil {
		return err
	}
	msg, err := crypto.Open(sm, pk)
	if errors.Is(err, crypto.ErrInvalidSignature) {
		if kerr := crypto.ValidatePublicKey(crypto.PublicKey(pk)); kerr != nil {
			return fmt.Errorf("%w (%s: %v)", err, pubkeyfile, kerr)
		}
	}
	if err != nil {
		return err
	}
	return writeFile(outfile, msg, 0666)
}
