// Delete command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomebase/tome/internal/markup"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <url>",
	Short: "Delete a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		url := markup.CleanURL(args[0])
		deleted, err := repo.Delete(url)
		if err != nil {
			return err
		}

		if !deleted {
			fmt.Printf("No page at %s\n", url)
			return nil
		}
		fmt.Printf("Deleted %s\n", url)
		return nil
	},
}
