package commands

import "github.com/spf13/cobra"

func positionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "List your open perp positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd.Context())
			defer cancel()

			positions, err := client.ListPositions(ctx)
			if err != nil {
				return err
			}
			return printResult("positions", positions)
		},
	}
}
