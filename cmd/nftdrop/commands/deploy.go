package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TENK-DAO/NFT/internal/domain"
	"github.com/TENK-DAO/NFT/internal/nearclient"
	"github.com/TENK-DAO/NFT/internal/services/deploy"
)

// deploy [contractId]: deploy the contract code, initializing iff the
// target account has none yet.
func deployCmd() *cobra.Command {
	var (
		wasmPath string
		owner    string
		name     string
		symbol   string
		baseURI  string
	)
	cmd := &cobra.Command{
		Use:   "deploy [contractId]",
		Short: "Deploy the token contract, initializing it on first deploy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := wire.Client.Signer().Account
			if len(args) == 1 {
				t, err := domain.ParseAccountID(args[0])
				if err != nil {
					return err
				}
				target = t
			}
			ownerID := wire.Client.Signer().Account
			if owner != "" {
				o, err := domain.ParseAccountID(owner)
				if err != nil {
					return err
				}
				ownerID = o
			}

			wasm, err := os.ReadFile(wasmPath)
			if err != nil {
				return fmt.Errorf("read bytecode: %w", err)
			}

			init := deploy.InitArgs{
				OwnerID: ownerID,
				Metadata: domain.ContractMetadata{
					Spec:    "nft-1.0.0",
					Name:    name,
					Symbol:  symbol,
					BaseURI: baseURI,
				},
			}
			plan, err := wire.Deploy.Plan(cmd.Context(), target, wasm, init)
			if err != nil {
				return err
			}
			if plan.InitIncluded {
				blob, err := json.MarshalIndent(init, "", "  ")
				if err != nil {
					return err
				}
				fmt.Printf("initializing with:\n%s\n", blob)
			}

			out, err := wire.Deploy.Run(cmd.Context(), plan)
			if err != nil {
				return err
			}
			fmt.Println(nearclient.ExplorerTxURL(wire.Config.Network, out.Hash))
			fmt.Printf("deployed to %s (tx %s)\n", target, out.Hash)
			return nil
		},
	}
	cmd.Flags().StringVar(&wasmPath, "wasm", "out/main.wasm", "contract bytecode path")
	cmd.Flags().StringVar(&owner, "owner", "", "collection owner (default: the signing account)")
	cmd.Flags().StringVar(&name, "collection-name", "TENK Drop", "collection name for first-time init")
	cmd.Flags().StringVar(&symbol, "collection-symbol", "TENK", "collection symbol for first-time init")
	cmd.Flags().StringVar(&baseURI, "base-uri", "", "collection base URI for first-time init")
	return cmd
}
