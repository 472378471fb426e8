package cmd

import (
	"fmt"

	"github.com/jdalgard/docxtree/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docxtree %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
