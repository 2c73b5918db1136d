package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/clients/pkg/clients"
)

const modulePath = "github.com/mesh-intelligence/clients"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the clients version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "clients v%s\nmodule: %s\n", clients.Version, modulePath)
			return nil
		},
	}
}
