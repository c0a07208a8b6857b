package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit USDC collateral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			ctx, cancel := opContext(cmd.Context())
			defer cancel()
			return renderOrderErr(client.Deposit(ctx, amount))
		},
	}
}

func openCmd() *cobra.Command {
	var price float64
	cmd := &cobra.Command{
		Use:   "open <market> <side> <size-usd>",
		Short: "Open a position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizeUSD, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[2], err)
			}
			var limit *float64
			if cmd.Flags().Changed("price") {
				limit = &price
			}
			ctx, cancel := opContext(cmd.Context())
			defer cancel()
			return renderOrderErr(client.OpenPosition(ctx, args[0], args[1], sizeUSD, limit))
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "limit price (market order when omitted)")
	return cmd
}

func closeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <market>",
		Short: "Close a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd.Context())
			defer cancel()
			return renderOrderErr(client.ClosePosition(ctx, args[0]))
		},
	}
}

func cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel an order by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext(cmd.Context())
			defer cancel()
			return renderOrderErr(client.CancelOrder(ctx, args[0]))
		},
	}
}
