package perp

import (
	"context"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Anchor account discriminators for the store program.
var (
	marketDiscriminator   = solana.Base58{219, 190, 213, 55, 0, 227, 198, 154}
	positionDiscriminator = solana.Base58{170, 188, 143, 228, 122, 64, 247, 208}
)

// marketAccount is the on-chain market layout, discriminator stripped.
type marketAccount struct {
	MarketToken solana.PublicKey
	IndexToken  solana.PublicKey
	LongToken   solana.PublicKey
	ShortToken  solana.PublicKey
	Enabled     uint8
}

// Market summarizes one perp market for output.
type Market struct {
	Address     string `json:"address"`
	MarketToken string `json:"market_token"`
	IndexToken  string `json:"index_token"`
	LongToken   string `json:"long_token"`
	ShortToken  string `json:"short_token"`
	Enabled     bool   `json:"enabled"`
}

// ListMarkets scans the store program for market accounts.
func (c *Client) ListMarkets(ctx context.Context) ([]Market, error) {
	accounts, err := c.RPC.GetProgramAccountsWithOpts(ctx, storeProgram, &rpc.GetProgramAccountsOpts{
		Commitment: c.Commit,
		Filters: []rpc.RPCFilter{
			{Memcmp: &rpc.RPCFilterMemcmp{Offset: 0, Bytes: marketDiscriminator}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan markets: %w", err)
	}

	markets := make([]Market, 0, len(accounts))
	for _, acc := range accounts {
		data := acc.Account.Data.GetBinary()
		if len(data) <= 8 {
			continue
		}
		var raw marketAccount
		if err := bin.NewBorshDecoder(data[8:]).Decode(&raw); err != nil {
			c.log.Warn().Err(err).Str("account", acc.Pubkey.String()).Msg("skipping undecodable market account")
			continue
		}
		markets = append(markets, Market{
			Address:     acc.Pubkey.String(),
			MarketToken: raw.MarketToken.String(),
			IndexToken:  raw.IndexToken.String(),
			LongToken:   raw.LongToken.String(),
			ShortToken:  raw.ShortToken.String(),
			Enabled:     raw.Enabled != 0,
		})
	}
	return markets, nil
}
