package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/docload/cmd/docload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"fetch", "batch", "mirror", "history", "path"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_Defaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"fetch", "https://example.com/a.pdf", "a.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "30s", cli.Timeout.String())
	assert.Equal(t, 8192, cli.ChunkSize)
	assert.InDelta(t, 1.0, cli.RPS, 0)
	assert.False(t, cli.Fetch.Force)
	assert.Equal(t, "https://example.com/a.pdf", cli.Fetch.URL)
	assert.Equal(t, "a.pdf", cli.Fetch.Name)
}
