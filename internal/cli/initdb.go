package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Connect to SurrealDB and apply the tracker schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := connectStore(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close(ctx) }()

		fmt.Printf("schema applied on %s (%s/%s)\n",
			cfg.SurrealDBURL, cfg.SurrealDBNamespace, cfg.SurrealDBDatabase)
		return nil
	},
}
