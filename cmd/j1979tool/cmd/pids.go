package cmd

import (
	"fmt"

	"github.com/roffe/j1979"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pidsCmd)
}

var pidsCmd = &cobra.Command{
	Use:   "pids <sid-hex> <payload-hex>",
	Short: "decode a supported-PID bitmap response",
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
		pids, err := d.DecodeSupportedPIDs(j1979.SID(sid[0]), data)
		if err != nil {
			return err
		}
		for _, p := range pids {
			fmt.Printf("0x%02X\n", byte(p))
		}
		return nil
	},
}
