package commands

import "github.com/spf13/cobra"

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Derive the wallet and ping the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd.Context())
			defer cancel()

			health, err := client.Health(ctx)
			if err != nil {
				return err
			}
			return printJSON(health)
		},
	}
}
