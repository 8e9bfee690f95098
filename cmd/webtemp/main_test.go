package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/webtemp/support"
)

func sensorFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temperature.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requirePortFree(t *testing.T, address string) {
	t.Helper()
	ln, err := net.Listen("tcp", address)
	if err != nil {
		t.Skipf("%s is not available: %v", address, err)
	}
	require.NoError(t, ln.Close())
}

func listensOnConfiguredAddress(t *testing.T) {
	requirePortFree(t, "127.0.0.1:9090")

	cfg, err := support.DefaultConfig().WithArguments([]string{"127.0.0.1", "9090"})
	require.NoError(t, err)

	ln, err := listen(cfg)
	require.NoError(t, err)
	defer ln.Close()

	assert.Equal(t, "127.0.0.1:9090", ln.Addr().String())
}

func servesFromCommandLine(t *testing.T) {
	requirePortFree(t, "127.0.0.1:9090")
	path := sensorFile(t, "23\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--file", path, "--log-level", "warn", "127.0.0.1", "9090"})

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	var body string
	require.Eventually(t, func() bool {
		response, err := http.Get("http://127.0.0.1:9090/temp")
		if err != nil {
			return false
		}
		defer response.Body.Close()
		b, err := io.ReadAll(response.Body)
		if err != nil || response.StatusCode != http.StatusOK {
			return false
		}
		body = string(b)
		return true
	}, 5*time.Second, 50*time.Millisecond)

	assert.True(t, strings.HasPrefix(body, "Temperature: 23°C<br/>Modification time: "))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func readsOnce(t *testing.T) {
	path := sensorFile(t, "23\n")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"read", "--file", path, "--layout", "classic"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Current temperature: 23°C\n", out.String())
}

func readFailsForMissingFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"read", "--file", filepath.Join(t.TempDir(), "temperature.txt")})

	assert.Error(t, cmd.Execute())
}

func rejectsTooManyArguments(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"127.0.0.1", "9090", "extra"})

	assert.Error(t, cmd.Execute())
}

func rejectsUnknownLayout(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--layout", "fancy", "127.0.0.1", "0"})

	assert.Error(t, cmd.Execute())
}

func TestCommandLine(t *testing.T) {
	t.Run("listens on configured address", listensOnConfiguredAddress)
	t.Run("serves from command line", servesFromCommandLine)
	t.Run("reads once", readsOnce)
	t.Run("read fails for missing file", readFailsForMissingFile)
	t.Run("rejects too many arguments", rejectsTooManyArguments)
	t.Run("rejects unknown layout", rejectsUnknownLayout)
}
