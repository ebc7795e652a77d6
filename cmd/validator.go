package cmd

import (
	"fmt"

	"github.com/adenhall/modenc/internal/ui"
	"github.com/adenhall/modenc/internal/validator"
	"github.com/spf13/cobra"
)

var validatorCmd = &cobra.Command{
	Use:   "validator",
	Short: "Encode validator module install payloads",
	Long: `Encode the on-chain install payload for an account validator module.

Each sub-command reads one JSON input document and prints the module
descriptor: the validator contract address and its ABI init data.

Examples:
  modenc validator ownable owners.json
  echo '{"threshold":1,"owners":["0xf6c0…"]}' | modenc validator ownable
  modenc validator multifactor factors.json --json`,
}

var validatorOwnableCmd = &cobra.Command{
	Use:   "ownable [input.json]",
	Short: "Threshold-of-owners validator (sorted ECDSA owner set)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		var in validator.OwnableInput
		if err := decodeInput(data, &in); err != nil {
			return err
		}
		if in.Address == "" {
			in.Address = cfg.ValidatorAddress("ownable")
		}
		module, err := validator.EncodeOwnable(in)
		if err != nil {
			return err
		}
		return printModule(module)
	},
}

var validatorENSCmd = &cobra.Command{
	Use:   "ens [input.json]",
	Short: "Expiring-owner validator (owners with uint48 expirations)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		var in validator.ENSInput
		if err := decodeInput(data, &in); err != nil {
			return err
		}
		if in.Address == "" {
			in.Address = cfg.ValidatorAddress("ens")
		}
		module, err := validator.EncodeENS(in)
		if err != nil {
			return err
		}
		return printModule(module)
	},
}

var validatorWebAuthnCmd = &cobra.Command{
	Use:   "webauthn [input.json]",
	Short: "WebAuthn credential validator (P-256 public keys)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		var in validator.WebAuthnInput
		if err := decodeInput(data, &in); err != nil {
			return err
		}
		if in.Address == "" {
			in.Address = cfg.ValidatorAddress("webauthn")
		}
		module, err := validator.EncodeWebAuthn(in)
		if err != nil {
			return err
		}
		return printModule(module)
	},
}

var validatorMultiFactorCmd = &cobra.Command{
	Use:   "multifactor [input.json]",
	Short: "Multi-factor validator composing nested validator configs",
	Long: `Encode the multi-factor validator from a sparse list of nested
validator configs. A null entry is skipped but does not renumber the
entries after it: each encoded entry keeps its original list index in
its packed key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		var in validator.MultiFactorInput
		if err := decodeInput(data, &in); err != nil {
			return err
		}
		if in.Threshold > 255 {
			return fmt.Errorf("threshold %d does not fit in one byte", in.Threshold)
		}
		module, err := validator.EncodeMultiFactor(in)
		if err != nil {
			return err
		}
		return printModule(module)
	},
}

// printModule renders a Module as JSON or a styled summary.
func printModule(m validator.Module) error {
	if jsonOut {
		return printJSON(m)
	}
	pairs := [][2]string{
		{"Address", ui.Hex(m.Address)},
		{"Type", ui.KindName(m.Type)},
		{"InitData", ui.Hex(m.InitData)},
		{"DeInitData", m.DeInitData},
	}
	fmt.Println(ui.KeyValueBlock("Validator Module", pairs))
	return nil
}

func init() {
	validatorCmd.AddCommand(
		validatorOwnableCmd,
		validatorENSCmd,
		validatorWebAuthnCmd,
		validatorMultiFactorCmd,
		validatorWizardCmd,
	)
}
