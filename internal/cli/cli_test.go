package cli

import (
	"bytes"
	"strings"
	"testing"
)

// runCommand executes the root command with the given stdin content and
// arguments, returning everything written to stdout. Each call gets a
// fresh command tree and an isolated config directory.
func runCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// quoteArgs prefixes quote arguments with an isolated config directory so
// tests never touch the real platform config.
func quoteArgs(t *testing.T, extra ...string) []string {
	t.Helper()
	args := []string{"quote", "--config-dir", t.TempDir()}
	return append(args, extra...)
}
