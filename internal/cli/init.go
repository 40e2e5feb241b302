package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shipquote/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the shipquote configuration",
		Long:  "Create the configuration directory and a default config.yaml with the standard Package Express limits.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	if err := ensureConfigDir(configDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	// Idempotent: an existing config.yaml is left untouched.
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "shipquote configuration initialized in %s\n", configDir)
	return nil
}
