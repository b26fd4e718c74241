package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TENK-DAO/NFT/internal/domain"
	"github.com/TENK-DAO/NFT/internal/services/distribute"
)

// distribute <accounts.json> <contractId> <token_num> [amount_per_tx]
func distributeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distribute <accounts.json> <contractId> <token_num> [amount_per_tx]",
		Short: "Mint one token per listed account, skipping accounts that already own one",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var raw []string
			if err := json.Unmarshal(blob, &raw); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			contract, err := domain.ParseAccountID(args[1])
			if err != nil {
				return err
			}
			perTx := distribute.DefaultPerTx
			if len(args) == 4 {
				perTx, err = strconv.Atoi(args[3])
				if err != nil {
					return fmt.Errorf("amount_per_tx: %w", err)
				}
			}

			accounts, invalid := distribute.Screen(raw)
			if len(invalid) > 0 {
				fmt.Printf("invalid Ids %q\n", strings.Join(invalid, ", "))
			}

			wire.Distribute.Run(cmd.Context(), accounts, distribute.Params{
				Contract: contract,
				Class:    domain.TokenClass(args[2]),
				PerTx:    perTx,
				OnOutcome: func(out domain.MintOutcome) {
					switch out.Status {
					case domain.Minted:
						fmt.Printf("Added %s\n", out.Account)
					case domain.Failed:
						fmt.Printf("Failed %s\n", out.Account)
					}
				},
			})
			return nil
		},
	}
}
