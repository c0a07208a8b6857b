package perp

import (
	"context"
	"fmt"
)

// The order surface mirrors the exchange instruction set but is not yet
// wired; every call reports ErrNotImplemented so callers can render a
// uniform not-implemented envelope.

func (c *Client) Deposit(ctx context.Context, amount float64) error {
	return fmt.Errorf("deposit: %w", ErrNotImplemented)
}

func (c *Client) OpenPosition(ctx context.Context, market, side string, sizeUSD float64, price *float64) error {
	return fmt.Errorf("open: %w", ErrNotImplemented)
}

func (c *Client) ClosePosition(ctx context.Context, market string) error {
	return fmt.Errorf("close: %w", ErrNotImplemented)
}

func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	return fmt.Errorf("cancel: %w", ErrNotImplemented)
}
