package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wirebyte/tlvkit/pkg/tlv"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a buffer of TLV records",
	Long: `Decode a buffer of TLV records and print one line per record.

Examples:
  tlv decode capture.bin
  tlv decode --hex "0304aabbccdd0100"
  tlv decode --hex "0504dead0602" --variant inclusive --schema dhcp.yaml`,
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
		sch, err := schemaFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		reader := tlv.NewReader[tlv.Variant](variant)
		end := 0
		count := 0
		fmt.Printf("%-8s %-5s %-20s %-5s %s\n", "OFFSET", "TYPE", "NAME", "LEN", "VALUE")
		for rec := reader.First(buf); !rec.IsNull(); rec = reader.Next(rec, buf) {
			fmt.Printf("%-8d %-5d %-20s %-5d %x\n",
				rec.Offset(), rec.Type(), sch.TagName(rec.Type()), len(rec.Value()), rec.Value())
			end = rec.Offset() + rec.TotalSize()
			count++
		}

		fmt.Printf("\n%d records in %d bytes\n", count, len(buf))
		if len(buf) > 0 && end != len(buf) {
			fmt.Println("warning: final record does not line up with the end of the buffer")
		}
	},
}

func init() {
	decodeCmd.Flags().String("hex", "", "Decode this hex string instead of a file")
	rootCmd.AddCommand(decodeCmd)
}
