// Tags command for the tome CLI.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags and the pages that carry them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		tagged, err := repo.TagsToPages()
		if err != nil {
			return err
		}

		names := make([]string, 0, len(tagged))
		for name := range tagged {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("%s:\n", name)
			for _, p := range tagged[name] {
				fmt.Printf("  %s\t%s\n", p.URL, p.Title())
			}
		}
		return nil
	},
}
