package cli

import (
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "campusdir",
		Short: "Campusdir CLI tool",
	}

	root.AddCommand(
		ServeCmd(),
	)

	return root
}
