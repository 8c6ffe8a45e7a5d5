package cli

import (
	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLtx/internal/ledger/tx"
)

type decodedSummary struct {
	File        string `json:"file"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	Account     string `json:"account,omitempty"`
	Destination string `json:"destination,omitempty"`
	Result      string `json:"result,omitempty"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file...]",
	Short: "Decode transaction documents into typed records",
	Long: `Decode reads one or more JSON files, each holding a transaction
document (bare, or wrapped as {"tx": ..., "meta": ...}), validates it
against the field schema of its kind and prints a summary per file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := processFiles(cmd.Context(), args, func(r *tx.Record, file string) (any, error) {
			s := decodedSummary{
				File:     file,
				Kind:     string(r.Kind()),
				Category: r.Category().String(),
			}
			if acct, ok := r.Account(); ok {
				s.Account = acct.Address
			}
			if dest, ok := r.Destination(); ok {
				s.Destination = dest.Address
			}
			if m := r.Meta(); m != nil {
				s.Result = m.TransactionResult
			}
			return s, nil
		})
		if err != nil {
			return err
		}
		for _, r := range results {
			if err := printJSON(r); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
