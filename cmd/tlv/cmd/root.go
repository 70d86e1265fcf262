package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wirebyte/tlvkit/pkg/schema"
	"github.com/wirebyte/tlvkit/pkg/tlv"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tlv",
	Short: "tlvkit - TLV record toolkit",
	Long: `tlvkit decodes, searches, counts and builds Type-Length-Value
records without being tied to a single protocol's length convention.

The --variant flag selects how the length byte is interpreted:
  standard   length counts only the value (total = 2 + L)
  inclusive  length counts the whole record (total = L)
  padded4    standard, with records padded to 4-byte alignment`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("variant", "standard", "Length policy: standard, inclusive or padded4")
	rootCmd.PersistentFlags().String("schema", "", "Path to a YAML tag dictionary")
}

// variantFromFlags resolves the --variant flag.
func variantFromFlags(cmd *cobra.Command) (tlv.Variant, string, error) {
	name, _ := cmd.Flags().GetString("variant")
	variant, err := tlv.ParseVariant(name)
	if err != nil {
		return nil, "", err
	}
	return variant, name, nil
}

// schemaFromFlags loads the --schema file, falling back to the builtin
// dictionary.
func schemaFromFlags(cmd *cobra.Command) (*schema.Schema, error) {
	path, _ := cmd.Flags().GetString("schema")
	if path == "" {
		return schema.Builtin(), nil
	}
	return schema.Load(path)
}

// readInput returns the TLV buffer for commands that accept either a file
// argument or a --hex flag.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	hexInput, _ := cmd.Flags().GetString("hex")

	switch {
	case hexInput != "" && len(args) > 0:
		return nil, fmt.Errorf("give either a file argument or --hex, not both")
	case hexInput != "":
		return decodeHexString(hexInput)
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("give a file argument or --hex")
	}
}

func decodeHexString(s string) ([]byte, error) {
	clean := strings.Map(func(c rune) rune {
		switch c {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return c
	}, s)
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
