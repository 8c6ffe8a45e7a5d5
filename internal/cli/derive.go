package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	addresscodec "github.com/LeJamon/goXRPLtx/internal/codec/addresscodec"
)

var (
	deriveTag     uint32
	deriveTestnet bool
)

type derivedAddress struct {
	PublicKey      string `json:"publicKey"`
	AccountID      string `json:"accountId"`
	ClassicAddress string `json:"classicAddress"`
	XAddress       string `json:"xAddress"`
}

var deriveCmd = &cobra.Command{
	Use:   "derive [public-key-hex...]",
	Short: "Derive ledger addresses from compressed public keys",
	Long: `Derive computes, for each 33-byte compressed public key given in hex,
the 20-byte account ID and its classic and X-address encodings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tag *uint32
		if cmd.Flags().Changed("tag") {
			tag = &deriveTag
		}
		for _, arg := range args {
			d, err := deriveAddresses(arg, tag, deriveTestnet)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			if err := printJSON(d); err != nil {
				return err
			}
		}
		return nil
	},
}

func deriveAddresses(pubHex string, tag *uint32, test bool) (derivedAddress, error) {
	pub, err := hex.DecodeString(pubHex)
	if err != nil {
		return derivedAddress{}, fmt.Errorf("invalid public key hex: %w", err)
	}

	accountID, err := addresscodec.AccountIDFromPublicKey(pub)
	if err != nil {
		return derivedAddress{}, err
	}
	classic, err := addresscodec.ClassicAddressFromPublicKey(pub)
	if err != nil {
		return derivedAddress{}, err
	}
	xAddr, err := addresscodec.EncodeXAddress(accountID, tag, test)
	if err != nil {
		return derivedAddress{}, err
	}

	return derivedAddress{
		PublicKey:      strings.ToUpper(pubHex),
		AccountID:      strings.ToUpper(hex.EncodeToString(accountID)),
		ClassicAddress: classic,
		XAddress:       xAddr,
	}, nil
}

func init() {
	deriveCmd.Flags().Uint32Var(&deriveTag, "tag", 0, "destination tag to embed in the X-address")
	deriveCmd.Flags().BoolVar(&deriveTestnet, "testnet", false, "use the testnet X-address prefix")
	rootCmd.AddCommand(deriveCmd)
}
