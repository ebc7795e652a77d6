package cmd

import (
	"fmt"

	"github.com/adenhall/modenc/internal/ui"
	"github.com/spf13/cobra"
)

// inputTemplates maps a validator kind to a starter input document.
var inputTemplates = map[string]string{
	"ownable": `{
  "threshold": 1,
  "owners": ["0x0000000000000000000000000000000000000000"]
}`,
	"ens": `{
  "threshold": 1,
  "owners": ["0x0000000000000000000000000000000000000000"],
  "ownerExpirations": [281474976710655]
}`,
	"webauthn": `{
  "threshold": 1,
  "credentials": [
    { "pubKeyX": "0x0", "pubKeyY": "0x0" }
  ]
}`,
	"multifactor": `{
  "threshold": 1,
  "validators": [
    { "type": "ecdsa", "threshold": 1, "owners": ["0x0000000000000000000000000000000000000000"] },
    null
  ]
}`,
}

var validatorWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactively pick a validator kind and get a starter input",
	Long: `Pick a validator kind from an interactive list, print a starter input
template for it, and optionally encode a filled-in document from stdin
right away.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := ui.PickItem("Pick a validator kind", []ui.PickerItem{
			{Label: "ownable", SubLabel: "threshold of sorted ECDSA owners", Value: "ownable"},
			{Label: "ens", SubLabel: "owners with uint48 expirations", Value: "ens"},
			{Label: "webauthn", SubLabel: "P-256 passkey credentials", Value: "webauthn"},
			{Label: "multifactor", SubLabel: "composition of nested validators", Value: "multifactor"},
		})
		if err != nil {
			return err
		}
		if kind == "" {
			return nil // cancelled
		}

		fmt.Println(ui.KindName(kind) + " input template:")
		fmt.Println(inputTemplates[kind])
		fmt.Println(ui.Meta("Save it, fill it in, then run: modenc validator " + kind + " <file>"))

		if !ui.Confirm("Encode a filled-in document from stdin now?") {
			return nil
		}

		sub, _, err := validatorCmd.Find([]string{kind})
		if err != nil {
			return err
		}
		return sub.RunE(sub, nil)
	},
}
