//go:build !linkedlists_nostack && !linkedlists_norc && !linkedlists_noarc

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPlain(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "stack  1.4.0\nrc     1.0.0\narc    0.1.0 (experimental)\n", stdout.String())
}

func TestRunYAML(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-yaml"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "name: arc")
	assert.Contains(t, stdout.String(), "version: 0.1.0")
}

func TestRunRequire(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-require", "stack@1.0.0, rc@1.0.0"}, &stdout, &stderr))
	stdout.Reset()
	assert.Equal(t, 1, run([]string{"-require", "stack@2.0.0"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "incompatible module version")
	assert.Empty(t, stdout.String())
	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-require", "stack"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-require", "stack@x"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-bogus"}, &stdout, &stderr))
}
