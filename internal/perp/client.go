// Package perp talks to the perps deployment on behalf of a resolved wallet:
// health probes, market and position scans, and the order surface.
package perp

import (
	"context"
	"errors"
	"fmt"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

// ErrNotImplemented marks order-surface operations that are not yet wired to
// the on-chain exchange instructions.
var ErrNotImplemented = errors.New("not yet implemented")

// Client wraps an RPC connection with the owner keypair and commitment level.
type Client struct {
	Cluster Cluster
	RPC     *rpc.Client
	Owner   solana.PrivateKey
	Commit  rpc.CommitmentType

	log zerolog.Logger
}

// NewClient builds a client for the cluster. rpcURL overrides the cluster
// default when non-empty; commit is one of processed|confirmed|finalized and
// falls back to confirmed.
func NewClient(cluster Cluster, rpcURL string, owner solana.PrivateKey, commit string, log zerolog.Logger) *Client {
	c := rpc.CommitmentConfirmed
	switch commit {
	case "processed":
		c = rpc.CommitmentProcessed
	case "finalized":
		c = rpc.CommitmentFinalized
	}
	if rpcURL == "" {
		rpcURL = cluster.DefaultRPC()
	}
	return &Client{
		Cluster: cluster,
		RPC:     rpc.New(rpcURL),
		Owner:   owner,
		Commit:  c,
		log:     log,
	}
}

// Health reports the cluster, the wallet address, and the node version the
// RPC endpoint answers with.
type Health struct {
	OK           bool   `json:"ok"`
	Cluster      string `json:"cluster"`
	WalletPubkey string `json:"wallet_pubkey"`
	NodeVersion  string `json:"node_version"`
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	version, err := c.RPC.GetVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	return &Health{
		OK:           true,
		Cluster:      c.Cluster.String(),
		WalletPubkey: c.Owner.PublicKey().String(),
		NodeVersion:  version.SolanaCore,
	}, nil
}
