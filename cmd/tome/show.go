// Show command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomebase/tome/internal/markup"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <url>",
	Short: "Print a page",
	Long:  `Print the rendered HTML of a page, or its raw source with --raw.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		page, err := repo.GetByURL(markup.CleanURL(args[0]))
		if err != nil {
			return err
		}

		if showRaw {
			fmt.Print(page.Content)
			return nil
		}
		fmt.Println(page.HTML)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print raw page source instead of HTML")
}
