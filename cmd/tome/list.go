// List command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		pages, err := repo.Index()
		if err != nil {
			return err
		}

		for _, p := range pages {
			fmt.Printf("%s\t%s\n", p.URL, p.Title())
		}
		return nil
	},
}
