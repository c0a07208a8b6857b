package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"perprunner-go/internal/perp"
)

const requestTimeout = 15 * time.Second

func opContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, requestTimeout)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printResult wraps a payload in the standard response envelope.
func printResult(key string, value any) error {
	body := map[string]any{
		"ok":            true,
		"cluster":       client.Cluster.String(),
		"wallet_pubkey": client.Owner.PublicKey().String(),
		"ts":            time.Now().Unix(),
	}
	if key != "" {
		body[key] = value
	}
	return printJSON(body)
}

// renderOrderErr turns not-implemented order operations into the 501 envelope
// instead of a command failure.
func renderOrderErr(err error) error {
	if errors.Is(err, perp.ErrNotImplemented) {
		return printJSON(map[string]any{
			"ok":   false,
			"code": 501,
			"err":  err.Error(),
		})
	}
	return err
}
