package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(vinCmd)
}

var vinCmd = &cobra.Command{
	Use:   "vin <payload-hex>",
	Short: "decode a SID 09 / PID 02 vehicle identification number response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDecoder(cmd)
		if err != nil {
			return err
		}
		data, err := parseHexPayload(args[0])
		if err != nil {
			return err
		}
		vin, err := d.DecodeVIN(data)
		if err != nil {
			return err
		}
		fmt.Println(vin)
		return nil
	},
}
