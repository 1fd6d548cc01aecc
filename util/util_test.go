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

package util

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codernix/ed25519-php-ext/test/partitiontest"
)

func TestMap(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Nil(t, Map[int, string](nil, strconv.Itoa))
	require.Equal(t, []string{}, Map([]int{}, strconv.Itoa))
	require.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
}

func TestFileExists(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	require.True(t, FileExists(dir))
	path := filepath.Join(dir, "file")
	require.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, nil, 0600))
	require.True(t, FileExists(path))
}

func TestGetFirstLineFromFile(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	tests := map[string]string{
		"127.0.0.1:8085\n":           "127.0.0.1:8085",
		"127.0.0.1:8085\r\nsecond\n": "127.0.0.1:8085",
		"no newline":                 "no newline",
		"":                           "",
	}
	i := 0
	for content, expected := range tests {
		path := filepath.Join(dir, strconv.Itoa(i))
		i++
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		line, err := GetFirstLineFromFile(path)
		require.NoError(t, err)
		require.Equal(t, expected, line)
	}

	_, err := GetFirstLineFromFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
