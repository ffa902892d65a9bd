// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/uniquewords/configuration"
	"github.com/bitmark-inc/uniquewords/fault"
)

type nested struct {
	Value string `gluamapper:"value"`
}

type testConfiguration struct {
	Name      string   `gluamapper:"name"`
	Count     int      `gluamapper:"count"`
	Enabled   bool     `gluamapper:"enabled"`
	List      []string `gluamapper:"list"`
	Nested    nested   `gluamapper:"nested"`
	Untouched string   `gluamapper:"untouched"`
}

const testScript = `
local M = {}
M.name = "test"
M.count = 42
M.enabled = true
M.list = { "a", "b" }
M.nested = { value = arg[1] }
return M
`

func writeScript(t *testing.T, dir string, name string, script string) string {
	fileName := filepath.Join(dir, name)
	if err := os.WriteFile(fileName, []byte(script), 0600); nil != err {
		t.Fatalf("write %q error: %s", fileName, err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeScript(t, dir, "test.conf", testScript)

	config := &testConfiguration{
		Count:     1,
		Untouched: "default",
	}
	err = configuration.ParseConfigurationFile(fileName, config, "first-argument")
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "test", config.Name, "name")
	assert.Equal(t, 42, config.Count, "count")
	assert.True(t, config.Enabled, "enabled")
	assert.Equal(t, []string{"a", "b"}, config.List, "list")
	assert.Equal(t, "first-argument", config.Nested.Value, "argument")
	assert.Equal(t, "default", config.Untouched, "default kept")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := os.MkdirTemp("", "configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeScript(t, dir, "test.conf", testScript)

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to non-struct")

	noTable := writeScript(t, dir, "no-table.conf", "local x = 1\n")
	err = configuration.ParseConfigurationFile(noTable, &config)
	assert.True(t, fault.IsErrInvalid(err), "no table: %v", err)

	broken := writeScript(t, dir, "broken.conf", "return {\n")
	err = configuration.ParseConfigurationFile(broken, &config)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &config)
	assert.NotNil(t, err, "missing file")
}
