package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newVersionCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		assert.Equal(t, "version: unknown\n", output)
		return
	}

	assert.Contains(t, output, "tool version")
	assert.Contains(t, output, "go version")
}

func TestVersionCmd_RegisteredOnDevkitRoot(t *testing.T) {
	sub, _, err := rootCmd.Find([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version", sub.Name())
	assert.Equal(t, "devkit version", sub.CommandPath())
	assert.Equal(t, "Show the version information", sub.Short)
}
