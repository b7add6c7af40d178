package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Email(t *testing.T) {
	var out bytes.Buffer
	code, err := run([]string{"email", "test@example.com"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.JSONEq(t, `{"IsValid":true,"Message":"Email is valid."}`, out.String())

	out.Reset()
	code, err = run([]string{"email"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.JSONEq(t, `{"IsValid":false,"Message":"Email is required."}`, out.String())
}

func TestRun_Phone(t *testing.T) {
	var out bytes.Buffer
	code, err := run([]string{"phone", "(123) 456-7890"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.JSONEq(t, `{"IsValid":true,"Message":"Phone number is valid."}`, out.String())

	out.Reset()
	code, err = run([]string{"phone", "123abc4567"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.JSONEq(t, `{"IsValid":false,"Message":"Invalid phone number format."}`, out.String())
}

func TestRun_BadArgs(t *testing.T) {
	code, err := run([]string{"fax", "123"}, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Equal(t, 2, code)
}

func TestRun_ServeBadConfig(t *testing.T) {
	code, err := run([]string{"serve", "--config", t.TempDir() + "/missing.toml"}, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Equal(t, 1, code)
}
