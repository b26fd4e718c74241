package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/TENK-DAO/NFT/internal/app"
)

var (
	network        string
	nodeURL        string
	account        string
	credentialsDir string
	verbose        bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "nftdrop",
		Short:        "Distribute an NFT drop on NEAR",
		SilenceUsage: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if network != "" {
				cfg.Network = network
			}
			if nodeURL != "" {
				cfg.NodeURL = nodeURL
			}
			if account != "" {
				cfg.AccountID = account
			}
			if credentialsDir != "" {
				cfg.CredentialsDir = credentialsDir
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			wire, err = app.NewWire(cfg, log)
			return err
		},
	}

	root.PersistentFlags().StringVar(&network, "network", "", "network id (default testnet, or NEAR_ENV)")
	root.PersistentFlags().StringVar(&nodeURL, "node-url", "", "RPC endpoint (default the network's public node)")
	root.PersistentFlags().StringVar(&account, "account", "", "signing account id (or NEAR_ACCOUNT_ID)")
	root.PersistentFlags().StringVar(&credentialsDir, "credentials-dir", "", "credentials dir (default ~/.near-credentials)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(distributeCmd(), deployCmd())
	return root.Execute()
}
