package cli

import (
	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLtx/internal/ledger/explainer"
	"github.com/LeJamon/goXRPLtx/internal/ledger/tx"
)

var explainAccount string

type explanation struct {
	File            string                    `json:"file"`
	EventsLabel     string                    `json:"eventsLabel"`
	Description     string                    `json:"description"`
	Participants    explainer.Participants    `json:"participants"`
	MonetaryDetails explainer.MonetaryDetails `json:"monetaryDetails"`
	AssetDetails    []explainer.AssetDetail   `json:"assetDetails,omitempty"`
}

var explainCmd = &cobra.Command{
	Use:   "explain [file...]",
	Short: "Derive presentation facts from transaction documents",
	Long: `Explain decodes each file like decode does, then runs the per-kind
explainer from the viewpoint of the given account and prints the derived
facts: event label, description, participants, monetary details and
associated assets.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := processFiles(cmd.Context(), args, func(r *tx.Record, file string) (any, error) {
			e := explainer.For(r, explainAccount)

			desc, err := e.Description()
			if err != nil {
				return nil, err
			}
			md, err := e.MonetaryDetails()
			if err != nil {
				return nil, err
			}
			return explanation{
				File:            file,
				EventsLabel:     e.EventsLabel(),
				Description:     desc,
				Participants:    e.Participants(),
				MonetaryDetails: md,
				AssetDetails:    e.AssetDetails(),
			}, nil
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
	explainCmd.Flags().StringVar(&explainAccount, "account", "", "viewpoint account address")
	_ = explainCmd.MarkFlagRequired("account")
	rootCmd.AddCommand(explainCmd)
}
