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
	"github.com/spf13/cobra"

	"github.com/codernix/ed25519-php-ext/crypto"
)

var signKeyfile string
var signInfile string
var signOutfile string

func init() {
	signCmd.Flags().StringVarP(&signKeyfile, "keyfile", "k", "", "Private key filename")
	signCmd.Flags().StringVarP(&signInfile, "infile", "i", "", "Message to sign ('-' for stdin)")
	signCmd.Flags().StringVarP(&signOutfile, "outfile", "o", "", "Signed message output ('-' for stdout)")
	signCmd.MarkFlagRequired("keyfile")
	signCmd.MarkFlagRequired("infile")
	signCmd.MarkFlagRequired("outfile")
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a message, writing the signature followed by the message",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(signFile(signKeyfile, signInfile, signOutfile))
	},
}

func signFile(keyfile, infile, outfile string) error {
	kp, err := loadKeyfile(keyfile)
	if err != nil {
		return err
	}
	msg, err := readFile(infile)
	if err != nil {
		return err
	}
	sm, err := crypto.Sign(msg, kp.SecretKey[:])
	if err != nil {
		return err
	}
	return writeFile(outfile, sm, 0666)
}
