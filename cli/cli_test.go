package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fzft/go-hashset/hashset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCli(t *testing.T, config *Config) (*Cli, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := New(config, &out)
	require.NoError(t, err)
	return c, &out
}

func TestRunOneShot(t *testing.T) {
	c, out := newCli(t, &Config{Type: "Integer", Args: []string{"ADD", "-13", "79"}})
	require.NoError(t, c.Run(false))
	assert.Equal(t, "(integer) 2\n", out.String())
}

func TestRunOneShotError(t *testing.T) {
	c, out := newCli(t, &Config{Type: "String", Args: []string{"NOPE"}})
	err := c.Run(false)
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Equal(t, "(error) ERR unknown command 'NOPE'\n", out.String())
}

func TestNewUnknownType(t *testing.T) {
	_, err := New(&Config{Type: "Float"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, hashset.ErrUnknownSetType)
}

func TestExecuteOutputModes(t *testing.T) {
	c, out := newCli(t, &Config{Type: "String"})
	c.Execute([]string{"ADD", "key1", "key2"})
	c.Execute([]string{"KEYS"})
	assert.Equal(t, "(integer) 2\n1) \"key2\"\n2) \"key1\"\n", out.String())

	out.Reset()
	c.config.Output = OutputRaw
	c.Execute([]string{"KEYS"})
	assert.Equal(t, "key2\nkey1\n", out.String())

	out.Reset()
	c.config.Output = OutputResp
	c.Execute([]string{"KEYS"})
	assert.Equal(t, "*2\r\n$4\r\nkey2\r\n$4\r\nkey1\n", out.String())
}

func TestExecuteRepeat(t *testing.T) {
	c, out := newCli(t, &Config{Type: "String"})
	failed := c.Execute([]string{"3", "ADD", "k"})
	assert.False(t, failed)
	assert.Equal(t, "(integer) 1\n(integer) 0\n(integer) 0\n", out.String())

	out.Reset()
	assert.True(t, c.Execute([]string{"0", "SIZE"}))
	assert.Equal(t, "Invalid hashset-cli repeat command option value.\n", out.String())
}

func TestExecuteNumericKeyIsNotRepeat(t *testing.T) {
	c, out := newCli(t, &Config{Type: "Integer", Args: []string{"5"}})
	require.ErrorIs(t, c.Run(false), ErrCommandFailed)
	assert.Equal(t, "(error) ERR unknown command '5'\n", out.String())
}

func TestConfigOptions(t *testing.T) {
	c, out := newCli(t, &Config{Type: "Integer", Capacity: 2, MaxLoad: 0})
	c.Execute([]string{"ADD", "1", "2", "3", "4", "5"})
	out.Reset()
	c.Execute([]string{"CAPACITY"})
	assert.Equal(t, "(integer) 2\n", out.String())
}

func TestResolveOutput(t *testing.T) {
	assert.Equal(t, OutputRaw, ResolveOutput(true, false, true))
	assert.Equal(t, OutputRaw, ResolveOutput(false, false, false))
	assert.Equal(t, OutputStandard, ResolveOutput(false, true, false))
	assert.Equal(t, OutputStandard, ResolveOutput(false, false, true))
}

func TestHistoryFile(t *testing.T) {
	c, _ := newCli(t, &Config{Type: "String", HistoryFile: os.DevNull})
	assert.Equal(t, "", c.historyFile())

	path := filepath.Join(t.TempDir(), "hist")
	c.config.HistoryFile = path
	assert.Equal(t, path, c.historyFile())
}

func TestVersion(t *testing.T) {
	assert.Contains(t, Version(), "hashset-cli ")
}
