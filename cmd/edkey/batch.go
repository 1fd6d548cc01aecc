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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/codernix/ed25519-php-ext/crypto"
	"github.com/codernix/ed25519-php-ext/util"
	"github.com/codernix/ed25519-php-ext/util/execpool"
)

var batchPubkeyfiles []string
var batchInfiles []string

func init() {
	batchCmd.Flags().StringSliceVarP(&batchPubkeyfiles, "pubkeyfile", "p", nil, "Public key filenames, one per signed message")
	batchCmd.Flags().StringSliceVarP(&batchInfiles, "infile", "i", nil, "Signed message filenames")
	batchCmd.MarkFlagRequired("infile")
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify many signed messages, printing OK or INVALID for each",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(openBatchFiles(cmd.Context(), os.Stdout, batchPubkeyfiles, batchInfiles))
	},
}

// openBatchFiles verifies infiles[i] against pubkeyfiles[i]. Unreadable
// inputs are reported as INVALID for their item only.
func openBatchFiles(ctx context.Context, out io.Writer, pubkeyfiles, infiles []string) error {
	pks := util.Map(pubkeyfiles, func(name string) crypto.BatchEntry {
		pk, err := loadPublicKey(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return crypto.Malformed()
		}
		return crypto.WellFormed(pk)
	})
	sms := util.Map(infiles, func(name string) crypto.BatchEntry {
		sm, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", name, err)
			return crypto.Malformed()
		}
		return crypto.WellFormed(sm)
	})

	backlog := execpool.MakeBacklog(nil, 0, execpool.LowPriority, nil)
	defer backlog.Shutdown()

	outcomes, err := crypto.MakeBatchOpener(backlog).OpenBatch(ctx, sms, pks)
	if err != nil {
		return err
	}
	for _, outcome := range outcomes {
		if outcome.Valid {
			fmt.Fprintln(out, "OK")
		} else {
			fmt.Fprintln(out, "INVALID")
		}
	}
	return nil
}
