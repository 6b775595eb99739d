package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)
	_, err = parseSteps([]string{"x"})
	assert.Error(t, err)
}

func TestParseVersionAndTarget(t *testing.T) {
	version, err := parseVersion("1")
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	_, err = parseVersion("-2")
	assert.Error(t, err)

	target, err := parseTarget("7")
	require.NoError(t, err)
	assert.Equal(t, uint(7), target)

	_, err = parseTarget("-1")
	assert.Error(t, err)
}

func TestIgnoreNoChange(t *testing.T) {
	assert.NoError(t, ignoreNoChange(migrate.ErrNoChange))
	assert.NoError(t, ignoreNoChange(nil))

	boom := errors.New("boom")
	assert.ErrorIs(t, ignoreNoChange(boom), boom)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := rootCmd()
	for _, name := range []string{"up", "down", "version", "force", "goto", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotEqual(t, root, cmd, name)
	}
}
