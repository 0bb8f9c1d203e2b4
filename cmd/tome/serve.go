// Serve command for the tome CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/tomebase/tome/internal/web"
	"github.com/tomebase/tome/internal/wiki"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the wiki over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exec, err := openStore()
		if err != nil {
			return err
		}

		repo := wiki.NewRepository(exec, logger)
		users := wiki.NewUserManager(exec, logger)
		srv := web.NewServer(cfg, repo, users, logger)
		return srv.ListenAndServe()
	},
}
