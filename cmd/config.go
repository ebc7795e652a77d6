package cmd

import (
	"fmt"

	"github.com/adenhall/modenc/internal/ui"
	"github.com/adenhall/modenc/internal/validator"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOut {
			return printJSON(cfg)
		}
		pairs := [][2]string{
			{"Config dir", cfg.Dir()},
			{"Output JSON", fmt.Sprintf("%v", cfg.OutputJSON)},
		}
		kinds := [][2]string{
			{"ownable", validator.OwnableValidatorAddress},
			{"ens", validator.ENSValidatorAddress},
			{"webauthn", validator.WebAuthnValidatorAddress},
		}
		for _, k := range kinds {
			addr := defaultOr(cfg.ValidatorAddress(k[0]), k[1])
			pairs = append(pairs, [2]string{"Validator " + k[0], ui.Hex(addr)})
		}
		fmt.Println(ui.KeyValueBlock("Configuration", pairs))
		return nil
	},
}

var configSetAddressCmd = &cobra.Command{
	Use:   "set-address <kind> <address>",
	Short: "Persist a validator address override for a kind",
	Long: `Persist a contract address override used whenever an input document
for the given kind (ownable, ens, webauthn) supplies no address of its
own. The multifactor address is fixed and cannot be overridden.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, address := args[0], args[1]
		switch kind {
		case "ownable", "ens", "webauthn":
		default:
			return fmt.Errorf("unknown validator kind %q", kind)
		}
		cfg.SetValidatorAddress(kind, address)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s validator address set to %s", kind, address)))
		return nil
	},
}

var configSetOutputCmd = &cobra.Command{
	Use:   "set-output <json|styled>",
	Short: "Persist the default output mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "json":
			cfg.OutputJSON = true
		case "styled":
			cfg.OutputJSON = false
		default:
			return fmt.Errorf("unknown output mode %q — expected json or styled", args[0])
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(ui.Success("output mode set to " + args[0]))
		return nil
	},
}

func defaultOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetAddressCmd, configSetOutputCmd)
}
