// Package commands wires the perprunner CLI: every subcommand runs against a
// wallet resolved from a mnemonic signer file and a perps client for the
// selected cluster.
package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"perprunner-go/internal/config"
	"perprunner-go/internal/perp"
	"perprunner-go/internal/util"
	"perprunner-go/internal/wallet"
)

var (
	cfgPath      string
	clusterLabel string
	signerPath   string
	jsonOnly     bool

	log    zerolog.Logger
	client *perp.Client
)

func Execute() error {
	root := &cobra.Command{
		Use:          "perprunner",
		Short:        "Mnemonic-derived Solana wallet CLI for the perps deployment",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			if clusterLabel != "" {
				cfg.Cluster = clusterLabel
			}
			if signerPath != "" {
				cfg.Signer.Path = signerPath
			}

			level := cfg.App.LogLevel
			if jsonOnly {
				level = "error"
			}
			log = util.NewLogger(level)

			cluster, err := perp.ParseCluster(cfg.Cluster)
			if err != nil {
				return err
			}
			w, err := wallet.Resolve(cfg.Signer.Path)
			if err != nil {
				return err
			}
			log.Debug().Str("pubkey", w.PublicKey).Str("cluster", cluster.String()).Msg("wallet resolved")

			client = perp.NewClient(cluster, cfg.Endpoint(cfg.Cluster), w.PrivateKey, cfg.RPC.Commitment, log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "config file path")
	root.PersistentFlags().StringVar(&clusterLabel, "cluster", "", "cluster (mainnet|devnet)")
	root.PersistentFlags().StringVar(&signerPath, "signer", "", "explicit path to the mnemonic signer file")
	root.PersistentFlags().BoolVar(&jsonOnly, "json", false, "print only JSON to stdout")

	root.AddCommand(
		healthCmd(),
		marketsCmd(),
		positionsCmd(),
		depositCmd(),
		openCmd(),
		closeCmd(),
		cancelCmd(),
	)
	return root.Execute()
}
