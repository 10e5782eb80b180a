package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	require.NoError(t, cmd.ParseFlags([]string{"--env-file", "prod.env", "--once"}))

	envFile, err := cmd.Flags().GetString("env-file")
	require.NoError(t, err)
	assert.Equal(t, "prod.env", envFile)

	once, err := cmd.Flags().GetBool("once")
	require.NoError(t, err)
	assert.True(t, once)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}

const childEnv = "HOMEWORK_BOT_TEST_CHILD"

func TestRun_MissingConfigNeverPolls(t *testing.T) {
	if os.Getenv(childEnv) == "1" {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"--once"})
		_ = cmd.Execute()
		return
	}

	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"homeworks":[]}`))
	}))
	defer srv.Close()

	for _, missing := range []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Run(missing, func(t *testing.T) {
			exe, err := os.Executable()
			require.NoError(t, err)

			child := exec.Command(exe, "-test.run=^TestRun_MissingConfigNeverPolls$")
			child.Dir = t.TempDir()
			child.Env = append(os.Environ(),
				childEnv+"=1",
				"PRACTICUM_TOKEN=practicum",
				"TELEGRAM_TOKEN=telegram",
				"TELEGRAM_CHAT_ID=123456",
				"PRACTICUM_ENDPOINT="+srv.URL,
				"LOG_FILE=",
				"LOG_LEVEL=",
				missing+"=",
			)
			out, err := child.CombinedOutput()

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr, "output: %s", out)
			assert.Equal(t, 1, exitErr.ExitCode())
			assert.Contains(t, string(out), missing)
			assert.Contains(t, string(out), "Could not load application configuration")
			assert.Zero(t, requests.Load())
		})
	}
}
