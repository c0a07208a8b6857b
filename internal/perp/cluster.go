package perp

import (
	"errors"
	"fmt"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Cluster selects which deployment the client targets.
type Cluster string

const (
	ClusterMainnet Cluster = "mainnet"
	ClusterDevnet  Cluster = "devnet"
)

// ErrUnsupportedCluster is returned for any label other than mainnet or
// devnet.
var ErrUnsupportedCluster = errors.New("unsupported cluster")

// storeProgram is the perps store program, shared across clusters.
var storeProgram = solana.MustPublicKeyFromBase58("Gmso1uvJnLbawvw7yezdfCDcPydwW2s2iqG3w6MDucLo")

// ParseCluster accepts the two recognized cluster labels.
func ParseCluster(label string) (Cluster, error) {
	switch label {
	case string(ClusterMainnet):
		return ClusterMainnet, nil
	case string(ClusterDevnet):
		return ClusterDevnet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedCluster, label)
}

// DefaultRPC returns the public RPC endpoint for the cluster.
func (c Cluster) DefaultRPC() string {
	if c == ClusterDevnet {
		return rpc.DevNet_RPC
	}
	return rpc.MainNetBeta_RPC
}

func (c Cluster) String() string { return string(c) }
