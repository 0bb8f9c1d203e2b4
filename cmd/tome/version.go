// Version command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomebase/tome/pkg/tome"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tome version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tome", tome.Version)
	},
}
