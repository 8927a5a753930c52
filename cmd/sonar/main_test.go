package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sonar/internal/puzzle"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, " 1  Sonar Sweep\n")
	assert.Contains(t, out, "14  Extended Polymerization\n")
}

func TestRun_InputDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day1.input", "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n")
	writeFile(t, dir, "day6.input", "3,4,3,1,2\n")

	out, logs, err := execute(t, "run", "1", "6", "--input-dir", dir, "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"day 1 part 1: 7\n"+
		"day 1 part 2: 5\n"+
		"day 6 part 1: 5934\n"+
		"day 6 part 2: 26984457539\n", out)
	assert.Contains(t, logs, "msg=solved")
	assert.Contains(t, logs, "day=6")
}

func TestRun_InputFileAndConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "fish.txt", "3,4,3,1,2\n")
	cfg := writeFile(t, dir, "sonar.yaml", "log_level: error\nlanternfish:\n  part1: 18\n  part2: 80\n")

	out, logs, err := execute(t, "run", "6", "--input", input, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "day 6 part 1: 26\nday 6 part 2: 5934\n", out)
	assert.Empty(t, logs)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "x.txt", "1\n")

	_, _, err := execute(t, "run", "1", "2", "--input", input)
	assert.ErrorIs(t, err, errInputWithManyDays)

	_, _, err = execute(t, "run", "26")
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	_, _, err = execute(t, "run", "one")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "1", "--input-dir", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "run")
	assert.Error(t, err)

	_, _, err = execute(t, "list", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestConfig_PrintsEffective(t *testing.T) {
	out, _, err := execute(t, "config", "--input-dir", "/data")
	require.NoError(t, err)
	assert.Contains(t, out, "input_dir: /data\n")
	assert.Contains(t, out, "sync_limit: 10000\n")
}
