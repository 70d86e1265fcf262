package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wirebyte/tlvkit/pkg/tlv"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count [file]",
	Short: "Count the TLV records in a buffer",
	Long: `Count the TLV records in a buffer.

Example:
  tlv count capture.bin
  tlv count --hex "01000200"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		buf, err := readInput(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		variant, _, err := variantFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		reader := tlv.NewReader[tlv.Variant](variant)
		fmt.Println(reader.Count(buf))
	},
}

func init() {
	countCmd.Flags().String("hex", "", "Count records in this hex string instead of a file")
	rootCmd.AddCommand(countCmd)
}
