package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/synroute/internal/cli"
)

func TestRunWithNoArgsPrintsUsage(t *testing.T) {
	var out, logs bytes.Buffer

	err := run(&out, &logs, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunListMode(t *testing.T) {
	var out, logs bytes.Buffer

	err := run(&out, &logs, []string{"--list"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Known compounds:")
	assert.Contains(t, out.String(), "ethanol")
}

func TestRunTargetMode(t *testing.T) {
	var out, logs bytes.Buffer

	err := run(&out, &logs, []string{"propanol"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Recommended route (in synthesis order):")
}

func TestRunInvalidFlagsReturnExitError(t *testing.T) {
	var out, logs bytes.Buffer

	err := run(&out, &logs, []string{"--log-level", "shouting", "--list"})
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
