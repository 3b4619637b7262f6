package executor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codysoyland/scriptcontext/pkg/hook"
)

var _ hook.Spawner = (*Executor)(nil)

func TestNew(t *testing.T) {
	e := New()

	assert.Equal(t, os.Stdin, e.stdin)
	assert.Equal(t, os.Stdout, e.stdout)
	assert.Equal(t, os.Stderr, e.stderr)
	assert.Nil(t, e.env, "environment is inherited by default")
}

func TestWithStdio(t *testing.T) {
	in := strings.NewReader("")
	var out, errOut bytes.Buffer

	e := New(WithStdio(in, &out, &errOut))

	assert.Equal(t, in, e.stdin)
	assert.Equal(t, &out, e.stdout)
	assert.Equal(t, &errOut, e.stderr)
}

func TestSpawnEmptyCommand(t *testing.T) {
	e := New()

	err := e.Spawn(t.TempDir(), "", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestSpawnCommand(t *testing.T) {
	tests := []struct {
		name      string
		command   string
		args      []string
		expectErr bool
	}{
		{
			name:    "echo command with arguments",
			command: "echo",
			args:    []string{"hello", "world"},
		},
		{
			name:    "echo command without arguments",
			command: "echo",
		},
		{
			name:    "true command (always succeeds)",
			command: "true",
		},
		{
			name:      "false command (always fails)",
			command:   "false",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			e := New(WithStdio(strings.NewReader(""), &out, &out))

			err := e.Spawn(t.TempDir(), tt.command, tt.args)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSpawnRunsInDir(t *testing.T) {
	tmpDir := t.TempDir()
	var out bytes.Buffer
	e := New(WithStdio(strings.NewReader(""), &out, &out))

	err := e.Spawn(tmpDir, "sh", []string{"-c", "pwd"})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSpawnConnectsStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	e := New(WithStdio(strings.NewReader("from stdin\n"), &out, &errOut))

	err := e.Spawn(t.TempDir(), "sh", []string{"-c", "cat; echo oops >&2"})
	require.NoError(t, err)

	assert.Equal(t, "from stdin\n", out.String())
	assert.Equal(t, "oops\n", errOut.String())
}

func TestSpawnEnvironment(t *testing.T) {
	var out bytes.Buffer

	t.Run("inherited", func(t *testing.T) {
		out.Reset()
		t.Setenv("SCRIPTCONTEXT_EXECUTOR_TEST", "inherited")
		e := New(WithStdio(strings.NewReader(""), &out, &out))

		err := e.Spawn(t.TempDir(), "sh", []string{"-c", `printf %s "$SCRIPTCONTEXT_EXECUTOR_TEST"`})
		require.NoError(t, err)
		assert.Equal(t, "inherited", out.String())
	})

	t.Run("explicit", func(t *testing.T) {
		out.Reset()
		e := New(
			WithStdio(strings.NewReader(""), &out, &out),
			WithEnv([]string{"SCRIPTCONTEXT_EXECUTOR_TEST=explicit"}),
		)

		err := e.Spawn(t.TempDir(), "/bin/sh", []string{"-c", `printf %s "$SCRIPTCONTEXT_EXECUTOR_TEST"`})
		require.NoError(t, err)
		assert.Equal(t, "explicit", out.String())
	})
}

func TestSpawnExitCodeHandling(t *testing.T) {
	tmpDir := t.TempDir()

	// Create a script that exits with specific code
	scriptPath := filepath.Join(tmpDir, "exit_test.sh")
	scriptContent := `#!/bin/sh
exit 42
`
	err := os.WriteFile(scriptPath, []byte(scriptContent), 0755)
	require.NoError(t, err)

	e := New(WithStdio(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))

	err = e.Spawn(tmpDir, scriptPath, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exited with code 42")

	code, ok := ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 42, code)
}

func TestSpawnKilledBySignal(t *testing.T) {
	e := New(WithStdio(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))

	err := e.Spawn(t.TempDir(), "sh", []string{"-c", "kill -9 $$"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sh terminated by signal")
	assert.NotContains(t, err.Error(), "exited with code")

	code, ok := ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 137, code)
}

func TestSpawnNonExistentCommand(t *testing.T) {
	e := New()

	err := e.Spawn(t.TempDir(), "nonexistent-command-12345", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute nonexistent-command-12345")

	_, ok := ExitCode(err)
	assert.False(t, ok)
}

func TestSpawnNonExistentDir(t *testing.T) {
	e := New()

	err := e.Spawn(filepath.Join(t.TempDir(), "missing"), "true", nil)
	assert.Error(t, err)
}
