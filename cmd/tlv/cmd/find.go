package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wirebyte/tlvkit/pkg/tlv"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find [file]",
	Short: "Find the first record with a given type tag",
	Long: `Find the first record with a given type tag. Duplicate tags are
legal in a buffer; the earliest occurrence wins.

Example:
  tlv find capture.bin --type 53
  tlv find --hex "05000900" --type 9`,
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
		typ, _ := cmd.Flags().GetUint8("type")

		reader := tlv.NewReader[tlv.Variant](variant)
		rec := reader.Find(typ, buf)
		if rec.IsNull() {
			fmt.Printf("no record with type %d (not present, or the sequence ended early)\n", typ)
			return
		}

		fmt.Printf("offset=%d type=%d name=%s len=%d value=%x\n",
			rec.Offset(), rec.Type(), sch.TagName(rec.Type()), len(rec.Value()), rec.Value())
	},
}

func init() {
	findCmd.Flags().String("hex", "", "Search this hex string instead of a file")
	findCmd.Flags().Uint8("type", 0, "Type tag to search for")
	_ = findCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(findCmd)
}
