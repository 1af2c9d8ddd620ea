package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/simplelist/pkg/simplelist"
)

const modulePath = "github.com/mesh-intelligence/simplelist"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the simplelist version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "simplelist v%s\nmodule: %s\n", simplelist.Version, modulePath)
			return nil
		},
	}
}
