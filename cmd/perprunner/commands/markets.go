package commands

import "github.com/spf13/cobra"

func marketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markets",
		Short: "List perp markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd.Context())
			defer cancel()

			markets, err := client.ListMarkets(ctx)
			if err != nil {
				return err
			}
			return printResult("markets", markets)
		},
	}
}
