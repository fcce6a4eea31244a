package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and stdin, isolated from any user config.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiffCmd_Text(t *testing.T) {
	out, _, err := run(t, "", "diff", "--text", "<p>Hello World</p>", "<p>Hello New World</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello <ins>New </ins>World</p>\n", out)
}

func TestDiffCmd_Files(t *testing.T) {
	dir := t.TempDir()
	before := writeFile(t, dir, "before.html", "<p>Old Content</p>")
	after := writeFile(t, dir, "after.html", "<p>New Content</p>")

	out, _, err := run(t, "", "diff", before, after)
	require.NoError(t, err)
	assert.Equal(t, "<p><del>Old</del><ins>New</ins> Content</p>\n", out)
}

func TestDiffCmd_Stdin(t *testing.T) {
	after := writeFile(t, t.TempDir(), "after.html", "<p>Hello</p>")

	out, _, err := run(t, "<p>Hello World</p>", "diff", "-", after)
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello<del> World</del></p>\n", out)
}

func TestDiffCmd_Errors(t *testing.T) {
	_, _, err := run(t, "", "diff", "-", "-")
	require.Error(t, err)

	_, _, err = run(t, "", "diff", filepath.Join(t.TempDir(), "missing.html"), "x")
	require.Error(t, err)

	_, _, err = run(t, "", "diff", "only-one")
	require.Error(t, err)
}

func TestDiffCmd_Flags(t *testing.T) {
	out, _, err := run(t, "", "--ins-tag", "mark", "--del-tag", "s", "--no-trim-quotes",
		"diff", "--text", `"a"`, `"b"`)
	require.NoError(t, err)
	assert.Equal(t, `<s>"a</s><mark>"b</mark>"`+"\n", out)
}

func TestDiffCmd_ConfigFile(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "config.yaml", "insert_tag: u\ndelete_tag: strike\n")

	out, _, err := run(t, "", "--config", cfg, "diff", "--text", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "<strike>a</strike><u>b</u>\n", out)
}

func TestDiffCmd_EnvOverride(t *testing.T) {
	t.Setenv("HTMLDIFF_INSERT_TAG", "em")

	out, _, err := run(t, "", "diff", "--text", "", "new")
	require.NoError(t, err)
	assert.Equal(t, "<em>new</em>\n", out)
}

func TestDiffCmd_InvalidConfig(t *testing.T) {
	_, _, err := run(t, "", "--ins-tag", "<bad>", "diff", "--text", "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestDiffCmd_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "debug", "diff", "--text", "a", "b")
	require.NoError(t, err)
	assert.Contains(t, stderr, "diff rendered")
}

func TestRestoreCmd(t *testing.T) {
	out, _, err := run(t, "-foo\n+bar\n", "restore")
	require.NoError(t, err)
	assert.Equal(t, "<del>foo</del><ins>bar</ins>\n", out)

	path := writeFile(t, t.TempDir(), "changes.diff", " <h1>T</h1>\n-x\n+y\n")
	out, _, err = run(t, "", "restore", path)
	require.NoError(t, err)
	assert.Equal(t, "<h1>T</h1>\n<del>x</del><ins>y</ins>\n", out)
}

func TestUnifiedCmd(t *testing.T) {
	dir := t.TempDir()
	before := writeFile(t, dir, "before.html", "<p>one</p>\n<p>Hello World</p>\n")
	after := writeFile(t, dir, "after.html", "<p>one</p>\n<p>Hello New World</p>\n")

	out, _, err := run(t, "", "unified", before, after)
	require.NoError(t, err)
	assert.Equal(t, " <p>one</p>\n-<p>Hello World</p>\n+<p>Hello New World</p>\n", out)

	out, _, err = run(t, "", "unified", "--render", before, after)
	require.NoError(t, err)
	assert.Equal(t, "<p>one</p>\n<p>Hello <ins>New </ins>World</p>\n", out)
}

func TestPluginCmd(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString
	req := `{"before":"` + b64([]byte("foo")) + `","after":"` + b64([]byte("bar")) + `"}`

	out, _, err := run(t, req, "plugin", "diff")
	require.NoError(t, err)
	assert.Equal(t, b64([]byte("<del>foo</del><ins>bar</ins>"))+"\n", out)

	req = `{"diff":"` + b64([]byte("-foo\n+bar\n")) + `"}`
	out, _, err = run(t, req, "plugin", "restore")
	require.NoError(t, err)
	assert.Equal(t, b64([]byte("<del>foo</del><ins>bar</ins>"))+"\n", out)

	_, _, err = run(t, `{"before":"YQ=="}`, "plugin", "diff")
	require.Error(t, err)
}

func TestCompareCmd(t *testing.T) {
	out, _, err := run(t, "", "compare", "--text", "The quick brown fox", "A slow red fox")
	require.NoError(t, err)
	assert.Contains(t, out, "before: 7 tokens, after: 7 tokens")
	assert.Contains(t, out, "Operations: 6 (Equal: 3, Delete: 0, Insert: 0, Replace: 3)")
	assert.Contains(t, out, "go-diff:")
}

func TestInitConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htmldiff.yaml")

	out, _, err := run(t, "", "init-config", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "insert_tag: ins")

	// The written file is a valid config for subsequent runs.
	out, _, err = run(t, "", "--config", path, "diff", "--text", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "<del>a</del><ins>b</ins>\n", out)
}
