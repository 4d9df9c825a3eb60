package cmd

import (
	"fmt"

	"github.com/roffe/j1979"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dtcCmd)
}

var dtcCmd = &cobra.Command{
	Use:   "dtc <sid-hex> <payload-hex>",
	Short: "decode a stored/pending/permanent DTC response",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDecoder(cmd)
		if err != nil {
			return err
		}
		sid, err := parseHexPayload(args[0])
		if err != nil || len(sid) != 1 {
			return fmt.Errorf("invalid sid %q", args[0])
		}
		data, err := parseHexPayload(args[1])
		if err != nil {
			return err
		}
		info, err := d.DecodeDTCs(j1979.SID(sid[0]), data)
		if err != nil {
			return err
		}
		if len(info.DTCs) == 0 {
			fmt.Println("no DTCs stored")
			return nil
		}
		for _, code := range info.DTCs {
			fmt.Println(code)
		}
		return nil
	},
}
