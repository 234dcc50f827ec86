package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyline/internal/loader"
)

var elapsedLine = regexp.MustCompile(`^Total execution time: \d+ms\.$`)

// execute runs the root command with args and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose = false
	configPath = ""
	cfg = nil
	logger = nil

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func reportLines(t *testing.T, out string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Regexp(t, elapsedLine, lines[len(lines)-1])
	return lines[:len(lines)-1]
}

func TestRunPrintsSkyline(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "4\n3 6\n1 5\n4 1\n2 3\n")

	out, err := execute(t, path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Skyline consists of 3 points:",
		"Point 1: (1,5)",
		"Point 2: (2,3)",
		"Point 3: (4,1)",
	}, reportLines(t, out))
}

func TestRunAppendsTxtSuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "input3.txt", "3\n2 5\n2 1\n2 3\n")

	out, err := execute(t, filepath.Join(dir, "input3"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Skyline consists of 1 points:",
		"Point 1: (2,1)",
	}, reportLines(t, out))
}

func TestRunCountOnlyInput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.txt", "0\n")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Skyline consists of 0 points:"}, reportLines(t, out))
}

func TestRunStrategiesAgree(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "8\n5 5\n1 9\n2 7\n2 4\n6 1\n3 8\n4 4\n4 3\n")

	baseline, err := execute(t, input)
	require.NoError(t, err)
	want := reportLines(t, baseline)

	configs := map[string]string{
		"inplace":          "solver:\n  strategy: inplace\n",
		"inplace/parallel": "solver:\n  strategy: inplace\n  parallel_depth: 2\n",
		"parallel":         "solver:\n  parallel_depth: 3\n",
	}
	for name, body := range configs {
		t.Run(name, func(t *testing.T) {
			cfgFile := writeFile(t, dir, strings.ReplaceAll(name, "/", "_")+".yaml", body)
			out, err := execute(t, "--config", cfgFile, input)
			require.NoError(t, err)
			assert.Equal(t, want, reportLines(t, out))
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	out, err := execute(t, filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, loader.ErrFileNotFound)
	assert.Equal(t, msgOpenFailed, userMessage(err))
}

func TestRunParseFailure(t *testing.T) {
	tests := map[string]string{
		"non-integer":   "2\n1 2\nthree 4\n",
		"dangling x":    "2\n1 2\n3\n",
		"out of range":  "1\n1 99999\n",
		"empty file":    "",
		"missing count": "   \n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bad.txt", content)
			out, err := execute(t, path)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, msgReadFailed, userMessage(err))
		})
	}
}

func TestRunRequiresOneArgument(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, userMessage(err), "accepts 1 arg")

	_, err = execute(t, "a", "b")
	require.Error(t, err)
}

func TestRunInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "1\n1 1\n")
	cfgFile := writeFile(t, dir, "bad.yaml", "solver:\n  strategy: quadtree\n")

	out, err := execute(t, "-c", cfgFile, input)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, userMessage(err), "invalid config")
}

func TestRenderError(t *testing.T) {
	rendered := renderError(loader.ErrFileNotFound)
	assert.Contains(t, rendered, msgOpenFailed)
}
