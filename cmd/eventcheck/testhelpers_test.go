package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davetashner/eventcheck/internal/testable"
)

const eventsHeader = "event_id,timestamp,user_id,ip,country,event_type,amount\n"

const validEvent = "e1001,2024-07-16T14:23:00Z,u_1,192.168.0.1,US,login,0\n"

// newTestCmd resets all CLI state, isolates config discovery and redirects
// the root command's output.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	verbose, quiet, noColor = false, false, false
	configPath, compactJSON = "", false
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	origDir := configDir
	configDir = t.TempDir()
	origFS := cmdFS
	origNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		configDir = origDir
		cmdFS = origFS
		color.NoColor = origNoColor
	})
	cmdFS = testable.DefaultFS

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// writeTestFile creates a file (and any necessary parent directories) under dir.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
