package perp

import (
	"context"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const (
	positionKindLong  = 1
	positionKindShort = 2
)

// positionAccount is the on-chain position layout, discriminator stripped.
// Owner sits directly after the discriminator so it doubles as the memcmp
// filter offset.
type positionAccount struct {
	Owner            solana.PublicKey
	MarketToken      solana.PublicKey
	CollateralToken  solana.PublicKey
	Kind             uint8
	SizeInUsd        bin.Uint128
	SizeInTokens     bin.Uint128
	CollateralAmount bin.Uint128
}

// Position summarizes one open position for output.
type Position struct {
	Address          string `json:"address"`
	MarketToken      string `json:"market_token"`
	CollateralToken  string `json:"collateral_token"`
	Side             string `json:"side"`
	SizeUsd          string `json:"size_usd"`
	SizeTokens       string `json:"size_tokens"`
	CollateralAmount string `json:"collateral_amount"`
}

func sideName(kind uint8) string {
	switch kind {
	case positionKindLong:
		return "long"
	case positionKindShort:
		return "short"
	}
	return "unknown"
}

// ListPositions scans the store program for positions owned by the wallet.
func (c *Client) ListPositions(ctx context.Context) ([]Position, error) {
	owner := c.Owner.PublicKey()
	accounts, err := c.RPC.GetProgramAccountsWithOpts(ctx, storeProgram, &rpc.GetProgramAccountsOpts{
		Commitment: c.Commit,
		Filters: []rpc.RPCFilter{
			{Memcmp: &rpc.RPCFilterMemcmp{Offset: 0, Bytes: positionDiscriminator}},
			{Memcmp: &rpc.RPCFilterMemcmp{Offset: 8, Bytes: solana.Base58(owner.Bytes())}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan positions: %w", err)
	}

	positions := make([]Position, 0, len(accounts))
	for _, acc := range accounts {
		data := acc.Account.Data.GetBinary()
		if len(data) <= 8 {
			continue
		}
		var raw positionAccount
		if err := bin.NewBorshDecoder(data[8:]).Decode(&raw); err != nil {
			c.log.Warn().Err(err).Str("account", acc.Pubkey.String()).Msg("skipping undecodable position account")
			continue
		}
		positions = append(positions, Position{
			Address:          acc.Pubkey.String(),
			MarketToken:      raw.MarketToken.String(),
			CollateralToken:  raw.CollateralToken.String(),
			Side:             sideName(raw.Kind),
			SizeUsd:          raw.SizeInUsd.String(),
			SizeTokens:       raw.SizeInTokens.String(),
			CollateralAmount: raw.CollateralAmount.String(),
		})
	}
	return positions, nil
}
