package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/polycrack/crack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hopeCipher = "AVTVL WHRVD AEJSA MRSWS TS"

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("POLYCRACK_WORKERS", "")
	t.Setenv("POLYCRACK_LOG_LEVEL", "")
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_TextFlag(t *testing.T) {
	code, out, _ := runCLI(t, "", "-text", hopeCipher)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "key length:      0 (friedman)")
	assert.Contains(t, out, "candidate HOPE [THE]\n  THEREISNOPLACELIKEHOME")
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, hopeCipher+"\n", "-keywords", "lemon,,key")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "no keyword produced a plausible plaintext")
}

func TestRun_FileAndJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ct.txt")
	require.NoError(t, os.WriteFile(path, []byte(hopeCipher), 0o600))

	code, out, _ := runCLI(t, "", "-json", "-keywords", "hope,h0pe", path)
	require.Equal(t, exitOK, code)

	var rep crack.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, crack.MethodFriedman, rep.Method)
	require.Len(t, rep.Candidates, 1)
	assert.Equal(t, "HOPE", rep.Candidates[0].Key)
	require.Len(t, rep.Rejected, 1)
	assert.Equal(t, "h0pe", rep.Rejected[0].Keyword)
}

func TestRun_Demo(t *testing.T) {
	code, out, _ := runCLI(t, "", "-demo", "-json", "-workers", "2")
	require.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polycrack.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
keywords     = ["hope"]
common_words = ["HOME"]
log_level    = "debug"
log_format   = "json"
`), 0o600))

	code, out, errOut := runCLI(t, "", "-config", path, "-text", hopeCipher)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "candidate HOPE [HOME]")
	assert.Contains(t, errOut, `"msg":"key length estimated"`)
}

func TestRun_PrintConfig(t *testing.T) {
	code, out, _ := runCLI(t, "", "-print-config", "-workers", "3", "-policy", "skip")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "workers = 3")
	assert.Contains(t, out, `policy = "skip"`)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"UnknownFlag", []string{"-nope"}, exitUsage},
		{"TwoInputs", []string{"-text", "ABC", "file.txt"}, exitUsage},
		{"TextAndDemo", []string{"-text", "ABC", "-demo"}, exitUsage},
		{"BadPolicy", []string{"-policy", "lenient", "-text", "ABC"}, exitUsage},
		{"BadWorkers", []string{"-workers", "0", "-text", "ABC"}, exitUsage},
		{"MissingFile", []string{filepath.Join(t.TempDir(), "absent")}, exitError},
		{"MissingConfig", []string{"-config", filepath.Join(t.TempDir(), "absent.toml"), "-text", "ABC"}, exitError},
		{"Degenerate", []string{"-text", " Q "}, exitError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "", tc.args...)
			assert.Equal(t, tc.code, code)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, splitList(" a ,, b c ,"))
	assert.Nil(t, splitList(""))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(strings.NewReader("x")))

	f, err := os.CreateTemp(t.TempDir(), "in")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}
