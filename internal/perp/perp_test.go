package perp

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"

	"perprunner-go/internal/wallet"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func testClient(t *testing.T, cluster Cluster) *Client {
	t.Helper()
	w, err := wallet.FromMnemonic(testMnemonic)
	if err != nil {
		t.Fatalf("derive test wallet: %v", err)
	}
	return NewClient(cluster, "", w.PrivateKey, "confirmed", zerolog.Nop())
}

func TestParseCluster(t *testing.T) {
	for _, label := range []string{"mainnet", "devnet"} {
		c, err := ParseCluster(label)
		if err != nil {
			t.Fatalf("expected %s to parse, got %v", label, err)
		}
		if c.String() != label {
			t.Fatalf("expected label %s, got %s", label, c)
		}
	}
	for _, label := range []string{"testnet", "localnet", ""} {
		if _, err := ParseCluster(label); !errors.Is(err, ErrUnsupportedCluster) {
			t.Fatalf("expected ErrUnsupportedCluster for %q, got %v", label, err)
		}
	}
}

func TestClusterDefaultRPC(t *testing.T) {
	if ClusterMainnet.DefaultRPC() != rpc.MainNetBeta_RPC {
		t.Fatalf("mainnet maps to wrong endpoint")
	}
	if ClusterDevnet.DefaultRPC() != rpc.DevNet_RPC {
		t.Fatalf("devnet maps to wrong endpoint")
	}
}

func TestNewClientCommitment(t *testing.T) {
	w, err := wallet.FromMnemonic(testMnemonic)
	if err != nil {
		t.Fatalf("derive test wallet: %v", err)
	}
	cases := map[string]rpc.CommitmentType{
		"processed": rpc.CommitmentProcessed,
		"confirmed": rpc.CommitmentConfirmed,
		"finalized": rpc.CommitmentFinalized,
		"":          rpc.CommitmentConfirmed,
		"bogus":     rpc.CommitmentConfirmed,
	}
	for commit, want := range cases {
		c := NewClient(ClusterDevnet, "", w.PrivateKey, commit, zerolog.Nop())
		if c.Commit != want {
			t.Fatalf("commit %q: expected %s, got %s", commit, want, c.Commit)
		}
	}
}

func TestOrderSurfaceNotImplemented(t *testing.T) {
	c := testClient(t, ClusterDevnet)
	ctx := context.Background()
	price := 42.0

	if err := c.Deposit(ctx, 100); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("deposit: expected ErrNotImplemented, got %v", err)
	}
	if err := c.OpenPosition(ctx, "SOL-PERP", "long", 50, &price); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("open: expected ErrNotImplemented, got %v", err)
	}
	if err := c.ClosePosition(ctx, "SOL-PERP"); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("close: expected ErrNotImplemented, got %v", err)
	}
	if err := c.CancelOrder(ctx, "1"); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("cancel: expected ErrNotImplemented, got %v", err)
	}
}

func TestSideName(t *testing.T) {
	if sideName(positionKindLong) != "long" || sideName(positionKindShort) != "short" {
		t.Fatalf("side names mismatched")
	}
	if sideName(0) != "unknown" {
		t.Fatalf("expected unknown for unmapped kind")
	}
}
