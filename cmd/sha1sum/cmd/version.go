package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digestkit/sha1sum/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of sha1sum",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetVersion())
	},
}
