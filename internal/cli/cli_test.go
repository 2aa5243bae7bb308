package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fatih/color"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenizh/go-capturer"
)

func init() {
	color.NoColor = true
}

// run executes the command and returns its exit code with captured stdout
// and stderr.
func run(args ...string) (code int, stdout, stderr string) {
	stderr = capturer.CaptureStderr(func() {
		stdout = capturer.CaptureStdout(func() {
			code = Run(args)
		})
	})
	return code, stdout, stderr
}

// writeInputs writes name/content pairs into a temporary directory and
// returns the paths in order.
func writeInputs(t *testing.T, pairs ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for i := 0; i < len(pairs); i += 2 {
		p := filepath.Join(dir, pairs[i])
		require.NoError(t, os.WriteFile(p, []byte(pairs[i+1]), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestRun_Version(t *testing.T) {
	code, out, _ := run("--version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, Version+"\n", out)

	code, out, _ = run("-v", "check", "whatever.nyml")
	assert.Equal(t, ExitOK, code, "version wins over the command")
	assert.Equal(t, Version+"\n", out)
}

func TestRun_Help(t *testing.T) {
	code, out, _ := run("--help")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "parse")
	assert.Contains(t, out, "encode")
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := run()
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "Usage")

	code, _, errOut = run("parse", "--bogus", "x.nyml")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "bogus")

	code, _, _ = run("parse")
	assert.Equal(t, ExitUsage, code, "at least one input is required")

	code, _, _ = run("parse", "--format", "toml", "x.nyml")
	assert.Equal(t, ExitUsage, code)
}

func TestParse_JSON(t *testing.T) {
	in := writeInputs(t, "app.nyml", "name: demo\nserver:\n  port: 8080\nname: again\n")
	code, out, _ := run("parse", in[0])
	require.Equal(t, ExitOK, code)
	assert.JSONEq(t, `{"name": "again", "server": {"port": "8080"}}`, out)
}

func TestParse_Strategy(t *testing.T) {
	in := writeInputs(t, "dup.nyml", "k: 1\nk: 2\n")

	_, out, _ := run("parse", "--strategy", "first", in[0])
	assert.JSONEq(t, `{"k": "1"}`, out)

	_, out, _ = run("parse", "--strategy", "all", in[0])
	assert.JSONEq(t, `{"k": ["1", "2"]}`, out)
}

func TestParse_YAML(t *testing.T) {
	in := writeInputs(t, "app.nyml", "name: demo\nnotes: |\n  line one\n  line two\nserver:\n  port: 8080\n")
	code, out, _ := run("parse", "-f", "yaml", in[0])
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "name: demo\n")
	assert.Contains(t, out, "notes: |\n  line one\n  line two\n")
	assert.Regexp(t, regexp.MustCompile(`server:\n  port: ["']8080["']\n`), out)
}

func TestParse_Entries(t *testing.T) {
	in := writeInputs(t, "app.nyml", "a: 1\na: 2\n")
	code, out, _ := run("parse", "--entries", in[0])
	require.Equal(t, ExitOK, code)
	assert.JSONEq(t, `{"type": "document", "entries": [
		{"key": "a", "value": "1", "line": 1, "indent": 0, "quoted_key": false},
		{"key": "a", "value": "2", "line": 2, "indent": 0, "quoted_key": false}
	]}`, out)
}

func TestParse_V2(t *testing.T) {
	in := writeInputs(t, "list.nyml", "items:\n  a\n  b\n")
	code, out, _ := run("parse", "--v2", in[0])
	require.Equal(t, ExitOK, code)
	assert.JSONEq(t, `[{"items": ["a", "b"]}]`, out)
}

func TestParse_ManyInputsKeepOrder(t *testing.T) {
	pairs := []string{}
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		pairs = append(pairs, n+".nyml", "id: "+n+"\n")
	}
	in := writeInputs(t, pairs...)
	code, out, _ := run("parse", "-f", "yaml", in[0], in[1], in[2], in[3], in[4])
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "id: a\n---\nid: b\n---\nid: c\n---\nid: d\n---\nid: e\n", out)
}

func TestParse_Output(t *testing.T) {
	in := writeInputs(t, "app.nyml", "k: v\n")
	dst := filepath.Join(t.TempDir(), "out.json")
	code, out, _ := run("parse", "-o", dst, in[0])
	require.Equal(t, ExitOK, code)
	assert.Empty(t, out)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.JSONEq(t, `{"k": "v"}`, string(b))
}

func TestParse_Stdin(t *testing.T) {
	in := writeInputs(t, "stdin.nyml", "from: stdin\n")
	f, err := os.Open(in[0])
	require.NoError(t, err)
	defer f.Close()
	stdin := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = stdin }()

	code, out, _ := run("parse", "-")
	require.Equal(t, ExitOK, code)
	assert.JSONEq(t, `{"from": "stdin"}`, out)
}

func TestParse_Failure(t *testing.T) {
	in := writeInputs(t, "bad.nyml", "ok: 1\nno colon\n")
	code, out, errOut := run("parse", in[0])
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, out)
	assert.Regexp(t, regexp.MustCompile(`bad\.nyml:2:1: MISSING_COLON missing colon in key-value pair`), errOut)
	assert.Contains(t, errOut, "1 of 1 input(s) failed")
}

func TestParse_MissingInput(t *testing.T) {
	code, _, errOut := run("parse", filepath.Join(t.TempDir(), "absent.nyml"))
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "absent.nyml")
}

func TestParse_EOFPolicy(t *testing.T) {
	in := writeInputs(t, "open.nyml", "text: |\n  never closed")
	code, _, _ := run("parse", in[0])
	assert.Equal(t, ExitOK, code)

	code, _, errOut := run("parse", "--eof", "error", in[0])
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "UNTERMINATED_MULTILINE")
}

func TestCheck(t *testing.T) {
	in := writeInputs(t,
		"good.nyml", "a: 1\n",
		"quote.nyml", "\"open: 1\n",
	)
	code, out, errOut := run("check", in[0], in[1])
	assert.Equal(t, ExitFailure, code)
	assert.Regexp(t, regexp.MustCompile(`good\.nyml: ok`), out)
	assert.Regexp(t, regexp.MustCompile(`quote\.nyml:1:1: UNMATCHED_QUOTE`), errOut)

	code, out, _ = run("check", "-q", in[0])
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, out)

	bad := writeInputs(t, "empty.nyml", "key:\n")
	code, _, errOut = run("check", "--v2", bad[0])
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "MISSING_VALUE")
}

func TestCheck_Strict(t *testing.T) {
	in := writeInputs(t, "indent.nyml", "a:\n  b: 1\n   c: 2\n")
	code, _, _ := run("check", in[0])
	assert.Equal(t, ExitOK, code)

	code, _, errOut := run("check", "--strict", in[0])
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "BAD_INDENT")
}

func TestCheck_NoStrictOverridesConfig(t *testing.T) {
	cfg := writeInputs(t, "nyml.nyml", "strict: true\n")
	in := writeInputs(t, "indent.nyml", "a:\n  b: 1\n   c: 2\n")

	code, _, errOut := run("-c", cfg[0], "check", in[0])
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "BAD_INDENT")

	code, _, _ = run("-c", cfg[0], "check", "--no-strict", in[0])
	assert.Equal(t, ExitOK, code)
}

func TestEncode(t *testing.T) {
	in := writeInputs(t, "v.json", `{"b": [1, 2.5], "a": {"x": "y"}, "c": true}`)
	code, out, _ := run("encode", in[0])
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "a:\n  x: y\nb: |\n  1\n  2.5\nc: true\n", out)

	code, out, _ = run("encode", "--indent", "4", in[0])
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "a:\n    x: y\nb: |\n    1\n    2.5\nc: true\n", out)
}

func TestEncode_V2(t *testing.T) {
	in := writeInputs(t, "v.json", `{"items": ["a", {"k": "v"}]}`)
	code, out, _ := run("encode", "--v2", in[0])
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "items:\n  a\n  k: v\n", out)
}

func TestEncode_EntriesRoundTrip(t *testing.T) {
	src := "z: 1\na:\n  b: 2\nz: 3\n"
	in := writeInputs(t, "src.nyml", src)
	code, entries, _ := run("parse", "--entries", in[0])
	require.Equal(t, ExitOK, code)

	js := writeInputs(t, "entries.json", entries)
	code, out, _ := run("encode", "--entries", js[0])
	require.Equal(t, ExitOK, code)
	assert.Equal(t, src, out)
}

func TestEncode_BadJSON(t *testing.T) {
	in := writeInputs(t, "v.json", `{"a":`)
	code, _, errOut := run("encode", in[0])
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "Decode JSON")
}

func TestFmt(t *testing.T) {
	src := "name:     demo\nserver:\n    port: 80\n"
	in := writeInputs(t, "app.nyml", src)

	code, out, _ := run("fmt", in[0])
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "name: demo\nserver:\n  port: 80\n", out)

	code, out, _ = run("fmt", "-w", "--indent", "3", in[0])
	require.Equal(t, ExitOK, code)
	assert.Empty(t, out)
	b, err := os.ReadFile(in[0])
	require.NoError(t, err)
	assert.Equal(t, "name: demo\nserver:\n   port: 80\n", string(b))

	code, _, errOut := run("fmt", "-w", "-")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "stdin")
}

func TestFmt_WriteRejectsURLs(t *testing.T) {
	src := "name:     demo\n"
	in := writeInputs(t, "app.nyml", src)

	code, _, errOut := run("fmt", "-w", in[0], "http://127.0.0.1:1/remote.nyml")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "http://127.0.0.1:1/remote.nyml")

	b, err := os.ReadFile(in[0])
	require.NoError(t, err)
	assert.Equal(t, src, string(b), "no input is rewritten when one of them is remote")
}

func TestIsLocal(t *testing.T) {
	assert.True(t, isLocal("conf/app.nyml"))
	assert.True(t, isLocal("/etc/app.nyml"))
	assert.False(t, isLocal("-"))
	assert.False(t, isLocal("https://example.com/app.nyml"))
	assert.False(t, isLocal("file:///etc/app.nyml"))
}

func TestRun_Config(t *testing.T) {
	cfg := writeInputs(t, "nyml.nyml", "format: yaml\nstrategy: first\nworkers: 2\n")
	in := writeInputs(t, "app.nyml", "k: 1\nk: 2\n")

	code, out, _ := run("-c", cfg[0], "parse", in[0])
	require.Equal(t, ExitOK, code)
	assert.Regexp(t, regexp.MustCompile(`^k: ["']1["']\n$`), out)

	code, out, _ = run("-c", cfg[0], "parse", "-f", "json", in[0])
	require.Equal(t, ExitOK, code)
	assert.JSONEq(t, `{"k": "1"}`, out, "flags override the config file")

	bad := writeInputs(t, "bad.nyml", "workers: 0\n")
	code, _, errOut := run("-c", bad[0], "parse", in[0])
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "workers must be positive")
}

func TestRun_LogLevel(t *testing.T) {
	in := writeInputs(t, "app.nyml", "k: v\n")
	code, _, errOut := run("-l", "debug", "parse", in[0])
	require.Equal(t, ExitOK, code)
	assert.Contains(t, errOut, "Processing 1 input(s) with 1 worker(s)")

	code, _, errOut = run("-l", "loud", "parse", in[0])
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "log_level")
}

func TestIsErrOfType(t *testing.T) {
	assert.True(t, IsErrOfType(&goFlags.Error{Type: goFlags.ErrUnknown}, goFlags.ErrUnknown))
	assert.False(t, IsErrOfType(&goFlags.Error{Type: goFlags.ErrUnknown}, goFlags.ErrHelp))
	assert.False(t, IsErrOfType(assert.AnError, goFlags.ErrHelp))
}
