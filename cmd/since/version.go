// Version command for the since CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sinceapp/since/pkg/since"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the since version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("since", since.Version)
	},
}
