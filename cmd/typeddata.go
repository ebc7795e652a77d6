package cmd

import (
	"fmt"
	"strconv"

	"github.com/adenhall/modenc/internal/typeddata"
	"github.com/adenhall/modenc/internal/ui"
	"github.com/spf13/cobra"
)

var withGasRefund bool

var typedDataCmd = &cobra.Command{
	Use:   "typeddata",
	Short: "Build EIP-712 typed-data documents for intent signing",
	Long: `Build the EIP-712 typed-data document for a transaction intent.

Each sub-command reads one JSON input document and prints the full
typed-data document: domain, type schema graph, primary type and
message. Big integers in the message are decimal strings; only the
domain chainId is a plain number.

Examples:
  modenc typeddata compact intent.json
  modenc typeddata permit2 intent.json --json
  modenc typeddata singlechain ops.json --gas-refund`,
}

var typedDataCompactCmd = &cobra.Command{
	Use:   "compact [input.json]",
	Short: "Multichain Compact intent (one domain, many elements)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		var in typeddata.CompactInput
		if err := decodeInput(data, &in); err != nil {
			return err
		}
		doc, err := typeddata.BuildCompact(in)
		if err != nil {
			return err
		}
		return printDocument(doc)
	},
}

var typedDataPermit2Cmd = &cobra.Command{
	Use:   "permit2 [input.json]",
	Short: "Permit2 token-permission intent (single element)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		var in typeddata.Permit2Input
		if err := decodeInput(data, &in); err != nil {
			return err
		}
		doc, err := typeddata.BuildPermit2(in)
		if err != nil {
			return err
		}
		return printDocument(doc)
	},
}

var typedDataSingleChainCmd = &cobra.Command{
	Use:   "singlechain [input.json]",
	Short: "Single-chain executor intent (--gas-refund for the refund schema)",
	Long: `Build the SingleChainOps typed-data document.

Without --gas-refund the legacy schema is used: its GasRefund type has
two fields and the message carries a fixed zero refund record. With
--gas-refund the input must include a gasRefund descriptor and the
schema gains the overhead field. The two variants differ in schema, not
just values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		var doc typeddata.Document
		if withGasRefund {
			var in typeddata.SingleChainGasRefundInput
			if err := decodeInput(data, &in); err != nil {
				return err
			}
			doc, err = typeddata.BuildSingleChainGasRefund(in)
			if err != nil {
				return err
			}
		} else {
			var in typeddata.SingleChainInput
			if err := decodeInput(data, &in); err != nil {
				return err
			}
			doc, err = typeddata.BuildSingleChain(in)
			if err != nil {
				return err
			}
		}
		return printDocument(doc)
	},
}

// printDocument renders a typed-data document. The document itself is
// always printed as JSON (it is the wire contract); the styled header
// summarizes the domain for human runs.
func printDocument(doc typeddata.Document) error {
	if !jsonOut {
		pairs := [][2]string{
			{"Domain", ui.Val(doc.Domain.Name)},
			{"ChainId", strconv.FormatUint(doc.Domain.ChainID, 10)},
			{"VerifyingContract", ui.Hex(doc.Domain.VerifyingContract)},
			{"PrimaryType", ui.KindName(doc.PrimaryType)},
			{"Types", fmt.Sprintf("%d struct types", len(doc.Types))},
		}
		fmt.Println(ui.KeyValueBlock("Typed Data", pairs))
	}
	return printJSON(doc)
}

func init() {
	typedDataSingleChainCmd.Flags().BoolVar(&withGasRefund, "gas-refund", false, "use the gas-refund schema variant")

	typedDataCmd.AddCommand(
		typedDataCompactCmd,
		typedDataPermit2Cmd,
		typedDataSingleChainCmd,
	)
}
