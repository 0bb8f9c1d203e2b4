// Edit command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomebase/tome/internal/markup"
)

var editFile string

var editCmd = &cobra.Command{
	Use:   "edit <url>",
	Short: "Create or update a page from a file or stdin",
	Long: `Write page source to the given URL. The source must start with a front
matter block (title: ..., tags: ...) followed by a blank line and the
markdown body. Reads from stdin unless --file is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(editFile)
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}

		repo, err := openRepository()
		if err != nil {
			return err
		}

		url := markup.CleanURL(args[0])
		page, existed, err := repo.GetOrBare(url)
		if err != nil {
			return err
		}

		page.Content = string(source)
		if err := repo.Save(page, true); err != nil {
			return err
		}

		if existed {
			fmt.Printf("Updated %s\n", url)
		} else {
			fmt.Printf("Created %s\n", url)
		}
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editFile, "file", "f", "", "read page source from file instead of stdin")
}
