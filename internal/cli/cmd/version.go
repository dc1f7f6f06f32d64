package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(buildInfo.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
