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

package codecs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/codernix/ed25519-php-ext/test/partitiontest"
	"github.com/stretchr/testify/require"
)

type testValue struct {
	Bool    bool
	String  string
	Int     int
	Renamed int `json:"renamed,omitempty"`
	Skipped int `json:"-"`
	hidden  int
}

func TestIsDefaultValue(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	v := testValue{
		Bool:   true,
		String: "default",
		Int:    1,
	}
	def := testValue{
		Bool:   true,
		String: "default",
		Int:    2,
	}

	objectValues := createValueMap(v)
	defaultValues := createValueMap(def)

	a.True(isDefaultValue("Bool", objectValues, defaultValues))
	a.True(isDefaultValue("String", objectValues, defaultValues))
	a.False(isDefaultValue("Int", objectValues, defaultValues))
	a.True(isDefaultValue("Missing", objectValues, defaultValues))
	a.NotContains(objectValues, "hidden")
}

func TestSaveNonDefaultValuesToFile(t *testing.T) {
	partitiontest.PartitionTest(t)

	filename := filepath.Join(t.TempDir(), "out.json")
	v := testValue{Bool: true, String: "changed", Int: 2, Renamed: 5, Skipped: 9, hidden: 1}
	def := testValue{Bool: true, String: "default", Int: 2}

	require.NoError(t, SaveNonDefaultValuesToFile(filename, v, def, []string{"Bool"}, true))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	var saved map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &saved))
	require.Equal(t, map[string]interface{}{
		"Bool":    true,
		"String":  "changed",
		"renamed": float64(5),
	}, saved)

	// the saved subset merged over the defaults gives back the object
	loaded := def
	require.NoError(t, LoadObjectFromFile(filename, &loaded))
	v.Skipped, v.hidden = 0, 0
	require.Equal(t, v, loaded)
}

func TestSaveNonDefaultValuesRejectsNonStruct(t *testing.T) {
	partitiontest.PartitionTest(t)

	err := SaveNonDefaultValuesToFile(filepath.Join(t.TempDir(), "x"), 3, 4, nil, false)
	require.Error(t, err)
}

func TestSaveLoadObject(t *testing.T) {
	partitiontest.PartitionTest(t)

	filename := filepath.Join(t.TempDir(), "obj.json")
	in := testValue{Bool: true, String: "s", Int: 7}
	require.NoError(t, SaveObjectToFile(filename, in, false))
	var out testValue
	require.NoError(t, LoadObjectFromFile(filename, &out))
	require.Equal(t, in, out)
}
