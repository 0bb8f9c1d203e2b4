// Init command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the wiki store",
	Long: `Initialize the wiki database file and write a default config.yaml to the
configuration directory. A fresh store starts with a single home page.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exec, err := openStore()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized wiki store at %s\n", exec.Path())
		return nil
	},
}
