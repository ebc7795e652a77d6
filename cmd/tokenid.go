package cmd

import (
	"fmt"

	"github.com/adenhall/modenc/internal/tokenid"
	"github.com/adenhall/modenc/internal/ui"
	"github.com/spf13/cobra"
)

var tokenIDCmd = &cobra.Command{
	Use:   "tokenid <id>",
	Short: "Decompose a packed 256-bit token identifier",
	Long: `Split a packed token ID into its 12-byte lock tag and 20-byte token
address. The ID may be decimal or 0x-prefixed hex.

Both extraction paths are shown: truncation of the serialized bytes and
the 160-bit mask. They must always agree; a mismatch is a bug.

Examples:
  modenc tokenid 0x010000000000000000000000f6c02c78ded62973b43bfa523b247da099486936
  modenc tokenid 12345678901234567890`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		lockTag, token, err := tokenid.Split(id)
		if err != nil {
			return err
		}
		extracted, err := tokenid.ExtractAddress(id)
		if err != nil {
			return err
		}
		masked, err := tokenid.Mask(id)
		if err != nil {
			return err
		}

		if jsonOut {
			return printJSON(map[string]string{
				"lockTag": lockTag,
				"token":   token,
				"masked":  masked,
			})
		}

		pairs := [][2]string{
			{"LockTag", ui.Hex(lockTag)},
			{"Token", ui.Hex(token)},
			{"Token (masked)", ui.Hex(masked)},
		}
		if extracted != masked {
			pairs = append(pairs, [2]string{"WARNING", ui.Err("extraction paths disagree")})
		}
		fmt.Println(ui.KeyValueBlock("Token ID", pairs))
		return nil
	},
}
