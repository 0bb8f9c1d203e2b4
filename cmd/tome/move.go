// Move command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomebase/tome/internal/markup"
)

var moveCmd = &cobra.Command{
	Use:   "move <url> <new-url>",
	Short: "Move a page to a new URL",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		url := markup.CleanURL(args[0])
		newURL := markup.CleanURL(args[1])
		if err := repo.Move(url, newURL); err != nil {
			return err
		}

		fmt.Printf("Moved %s to %s\n", url, newURL)
		return nil
	},
}
