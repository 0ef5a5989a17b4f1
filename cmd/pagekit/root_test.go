package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/pagekit/markdown"
	"github.com/randalmurphal/pagekit/truncate"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimate(t *testing.T) {
	out, err := run(t, strings.Repeat("x", 18000), "estimate")
	require.NoError(t, err)
	assert.Equal(t, "⚡ 4000/4000 tokens (100.0%)\n", out)
}

func TestTruncate(t *testing.T) {
	out, err := run(t, strings.Repeat("word ", 5000), "truncate")
	require.NoError(t, err)

	var res truncate.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.WasTruncated)
	assert.Equal(t, 5556, res.OriginalTokens)
	assert.True(t, strings.HasSuffix(res.Content, truncate.DefaultNotice))
}

func TestTruncate_ContentOnly(t *testing.T) {
	out, err := run(t, "short", "truncate", "--content-only")
	require.NoError(t, err)
	assert.Equal(t, "short", out)
}

func TestTruncate_FromFileWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pagekit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("language: en\nmax_tokens: 100\n"), 0o600))
	input := filepath.Join(dir, "page.txt")
	require.NoError(t, os.WriteFile(input, []byte(strings.Repeat("word ", 200)), 0o600))

	out, err := run(t, "", "--config", cfgPath, "truncate", input)
	require.NoError(t, err)

	var res truncate.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 100, res.MaxTokens)
	assert.True(t, strings.HasSuffix(res.Content, truncate.Notice("en")))
}

func TestParse_Formats(t *testing.T) {
	input := "# Title\n- item"

	out, err := run(t, input, "parse")
	require.NoError(t, err)
	var elements []markdown.Element
	require.NoError(t, json.Unmarshal([]byte(out), &elements))
	assert.Equal(t, markdown.Parse(input), elements)

	out, err = run(t, input, "parse", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "type: heading")
	assert.Contains(t, out, "level: 1")

	out, err = run(t, input, "parse", "-f", "plain")
	require.NoError(t, err)
	assert.Equal(t, "Title\n- item\n", out)

	_, err = run(t, input, "parse", "-f", "html")
	assert.Error(t, err)
}

func TestSchemaCmd(t *testing.T) {
	out, err := run(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, markdown.SchemaID)
}

func TestPrepare(t *testing.T) {
	out, err := run(t, "page text", "prepare", "--action", "pergunta", "--question", "Quem?")
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"pergunta","content":"page text","language":"pt-BR","question":"Quem?"}`, out)

	_, err = run(t, "page text", "prepare", "--action", "pergunta")
	assert.Error(t, err)
}

func TestPrepare_WithEndpoint(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pagekit.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend_url = \"http://api.test\"\nstream = true\n"), 0o600))

	out, err := run(t, "page text", "--config", cfgPath, "prepare", "--with-endpoint")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"endpoint": "http://api.test/ask/stream",
		"body": {"action":"resumir","content":"page text","language":"pt-BR"}
	}`, out)

	out, err = run(t, "page text", "prepare", "--with-endpoint")
	require.NoError(t, err)
	var prepared map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &prepared))
	assert.True(t, strings.HasSuffix(prepared["endpoint"].(string), "/ask"))
}

func TestLanguageFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "short flag", args: []string{"-l", "en", "prepare"}, expected: "en"},
		{name: "long flag", args: []string{"--language", "es", "prepare"}, expected: "es"},
		{name: "default without flag", args: []string{"prepare"}, expected: "pt-BR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "page text", tt.args...)
			require.NoError(t, err)

			var body map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &body))
			assert.Equal(t, tt.expected, body["language"])
		})
	}

	out, err := run(t, strings.Repeat("word ", 5000), "-l", "es", "truncate", "--content-only")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, truncate.Notice("es")))

	_, err = run(t, "page text", "-l", "xx", "prepare")
	assert.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "schema")
	assert.Error(t, err)
}
