package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/roffe/j1979"
	"github.com/roffe/j1979/transport"
	"github.com/spf13/cobra"
)

func init() {
	liveCmd.Flags().Uint("attempts", 3, "request retry attempts before giving up")
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live <port> <sid-hex> <pid-hex>",
	Short: "poll a live ELM327-class adapter over serial and decode supported PIDs (or, for SID 09, the VIN) for one request",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDecoder(cmd)
		if err != nil {
			return err
		}
		modeBytes, err := parseHexPayload(args[1])
		if err != nil || len(modeBytes) != 1 {
			return fmt.Errorf("invalid sid %q", args[1])
		}
		pidBytes, err := parseHexPayload(args[2])
		if err != nil || len(pidBytes) != 1 {
			return fmt.Errorf("invalid pid %q", args[2])
		}

		el, err := transport.OpenELM327(args[0], 38400)
		if err != nil {
			return err
		}
		defer el.Close()

		attempts, _ := cmd.Flags().GetUint("attempts")
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		data, err := transport.Poll(ctx, el, modeBytes[0], pidBytes[0], attempts)
		if err != nil {
			return fmt.Errorf("poll: %w", err)
		}

		if modeBytes[0] == byte(j1979.ServiceVehicleInfo) {
			vin, err := d.DecodeVIN(data)
			if err != nil {
				return err
			}
			fmt.Println(vin)
			return nil
		}

		pids, err := d.DecodeSupportedPIDs(j1979.SID(modeBytes[0]), data)
		if err != nil {
			return err
		}
		for _, p := range pids {
			fmt.Printf("0x%02X\n", byte(p))
		}
		return nil
	},
}
