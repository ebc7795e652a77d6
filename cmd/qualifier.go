package cmd

import (
	"fmt"

	"github.com/adenhall/modenc/internal/qualifier"
	"github.com/adenhall/modenc/internal/ui"
	"github.com/spf13/cobra"
)

var qualifierCmd = &cobra.Command{
	Use:   "qualifier <hex>",
	Short: "Hash a raw qualifier payload to its 32-byte digest",
	Long: `Compute the Keccak-256 digest of a raw hex qualifier payload. The
digest is what gets bound into an intent's mandate as the q field.

Examples:
  modenc qualifier 0xdeadbeef
  modenc qualifier ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		digest, err := qualifier.Hash(args[0])
		if err != nil {
			return err
		}

		if jsonOut {
			return printJSON(map[string]string{"q": digest})
		}

		pairs := [][2]string{
			{"Payload", ui.TruncateHex(args[0])},
			{"Digest", ui.Hex(digest)},
		}
		fmt.Println(ui.KeyValueBlock("Qualifier Digest", pairs))
		return nil
	},
}
