package cmd

import (
	"fmt"
	"os"

	"github.com/adenhall/modenc/internal/config"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/adenhall/modenc/cmd.Version=1.2.3" .
var Version = "0.3.0"

var (
	cfgDir  string
	cfg     *config.Config
	jsonOut bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "modenc",
	Short: "Smart-account module & intent encoder",
	Long: `modenc — deterministic encoding for smart-account infrastructure.

  Build ABI install payloads for account validator modules (ownable,
  ens, webauthn, multi-factor) and EIP-712 typed-data documents for
  cross-chain and single-chain intents.

Every command reads one JSON input document (a file argument, or stdin
when the argument is "-" or absent) and prints the encoded result.
Outputs are byte-for-byte deterministic: the same input always encodes
to the same bytes.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		// Persisted output preference, unless --json was given explicitly.
		if cfg.OutputJSON && !cmd.Root().PersistentFlags().Changed("json") {
			jsonOut = true
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// MODENC_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("MODENC_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.modenc)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")

	// Register all sub-commands.
	rootCmd.AddCommand(
		validatorCmd,
		typedDataCmd,
		tokenIDCmd,
		qualifierCmd,
		configCmd,
	)
}
