package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ".", cfg.OutDir)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockwalk.yaml")
	content := `
addr: ":9090"
out_dir: "./pages"
params:
  amm-swap:
    dx: 250
    fee: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "./pages", cfg.OutDir)

	params := cfg.ParamsFor("amm-swap")
	require.NotNil(t, params)
	assert.Equal(t, 250.0, params["dx"])
	assert.Equal(t, 5.0, params["fee"])
	assert.Nil(t, cfg.ParamsFor("utxo"))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRunList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunList(&buf))

	out := buf.String()
	assert.Contains(t, out, "diffie-hellman")
	assert.Contains(t, out, "utxo")
	assert.Contains(t, out, "history")
	assert.Contains(t, out, "linear")
}

func TestRunExport_Single(t *testing.T) {
	dir := t.TempDir()
	err := RunExport(ExportOptions{Slug: "amm-swap", OutDir: dir})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "amm-swap.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
}

func TestRunExport_All(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, RunExport(ExportOptions{All: true, OutDir: dir}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "catalog.html")
	assert.Contains(t, names, "ec-field.html")
}

func TestRunExport_UnknownSlug(t *testing.T) {
	err := RunExport(ExportOptions{Slug: "nope", OutDir: t.TempDir()})
	assert.Error(t, err)
}

func TestRunSession_HeadlessScripted(t *testing.T) {
	var out bytes.Buffer
	err := RunSession(RunOptions{
		Slug:     "utxo",
		LogLevel: "warn",
		Headless: true,
		Plain:    true,
		Input:    strings.NewReader("n\nn\nq\n"),
		Output:   &out,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[1/")
}

func TestRunSession_UnknownSlug(t *testing.T) {
	err := RunSession(RunOptions{Slug: "nope", Headless: true, Input: strings.NewReader(""), Output: &bytes.Buffer{}})
	assert.Error(t, err)
}
