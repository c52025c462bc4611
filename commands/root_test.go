package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/penwyp/go-timesheet/internal/config"
	"github.com/penwyp/go-timesheet/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWorkspace creates a data directory and a config file pointing logging into it
func newWorkspace(t *testing.T) (dir, configFile string) {
	t.Helper()
	dir = t.TempDir()
	configFile = filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("data_dir: %s\nlog:\n  file: %s\n", dir, filepath.Join(dir, "logs", "app.log"))
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	return dir, configFile
}

func writeHistory(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte(content), 0644))
}

// resetFlags restores every flag to its default so commands can be executed repeatedly
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cfg = config.DefaultConfig()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCommandStructure(t *testing.T) {
	assert.Equal(t, "go-timesheet [flags]", rootCmd.Use)
	assert.True(t, strings.Contains(rootCmd.Long, "day-by-day timeline"))

	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"visualize", "sessions", "switch", "end-day", "status", "jobs", "dashboard", "config"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommandFlags(t *testing.T) {
	tests := []struct {
		name     string
		flagName string
		expected string
	}{
		{"dir flag", "dir", ""},
		{"config flag", "config", ""},
		{"debug flag", "debug", "false"},
		{"format flag", "format", ""},
		{"output flag", "output", ""},
		{"cutoff flag", "cutoff", "0"},
		{"watch flag", "watch", "false"},
		{"title flag", "title", "Timesheet Visualisation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				flag = rootCmd.PersistentFlags().Lookup(tt.flagName)
			}
			require.NotNil(t, flag, "flag %s should exist", tt.flagName)
			assert.Equal(t, tt.expected, flag.DefValue)
		})
	}
}

func TestSetup_DirFlagOverridesConfig(t *testing.T) {
	_, configFile := newWorkspace(t)
	other := t.TempDir()

	out, err := executeCommand(t, "--config", configFile, "--dir", other, "status")
	require.NoError(t, err)
	assert.Equal(t, other, cfg.DataDir)
	assert.Equal(t, "No project selected\n", out)
}

func TestSetup_MissingExplicitConfig(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "status")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	dir, configFile := newWorkspace(t)

	out, err := executeCommand(t, "--config", configFile, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "cutoff_hour: 19")
	assert.Contains(t, out, "final_extension: 1h0m0s")
	assert.Contains(t, out, "data_dir: "+dir)

	target := filepath.Join(dir, "nested", "config.yaml")
	out, err = executeCommand(t, "--config", target, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Config written to "+target+"\n", out)

	loaded, err := config.Load(target)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Timeline, loaded.Timeline)

	_, err = executeCommand(t, "--config", target, "config", "init")
	assert.Error(t, err, "existing file is not overwritten without --force")

	_, err = executeCommand(t, "--config", target, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestHistoryPath(t *testing.T) {
	cfg = config.DefaultConfig()
	cfg.DataDir = util.ExpandPath("/tmp/timesheet")
	assert.Equal(t, "/tmp/timesheet/history.json", historyPath())
}
