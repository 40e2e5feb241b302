package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shipquote/pkg/shipquote"
)

const modulePath = "github.com/mesh-intelligence/shipquote"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shipquote version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "shipquote v%s\nmodule: %s\n", shipquote.Version, modulePath)
			return nil
		},
	}
}
