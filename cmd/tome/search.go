// Search command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomebase/tome/internal/wiki"
)

var (
	searchCaseSensitive bool
	searchOrder         string
	searchFields        []string
)

// cliSearchOrders maps the --order flag values to search orderings.
var cliSearchOrders = map[string]wiki.SearchOrder{
	"":             wiki.OrderDefault,
	"created-asc":  wiki.OrderCreatedAsc,
	"created-desc": wiki.OrderCreatedDesc,
	"edited-asc":   wiki.OrderEditedAsc,
	"edited-desc":  wiki.OrderEditedDesc,
}

var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Search pages by regular expression",
	Long: `Search page titles, tags, and bodies with a regular expression. Matching
is case-insensitive unless --case-sensitive is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, ok := cliSearchOrders[searchOrder]
		if !ok {
			return fmt.Errorf("unknown order %q (want created-asc, created-desc, edited-asc, or edited-desc)", searchOrder)
		}

		repo, err := openRepository()
		if err != nil {
			return err
		}

		pages, err := repo.Search(args[0], !searchCaseSensitive, searchFields, order)
		if err != nil {
			return err
		}

		for _, p := range pages {
			fmt.Printf("%s\t%s\n", p.URL, p.Title())
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false, "match case exactly")
	searchCmd.Flags().StringVar(&searchOrder, "order", "", "result order: created-asc, created-desc, edited-asc, edited-desc")
	searchCmd.Flags().StringSliceVar(&searchFields, "fields", []string{wiki.FieldTitle, wiki.FieldTags, wiki.FieldBody}, "fields to match against")
}
