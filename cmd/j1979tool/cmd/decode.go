package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/roffe/j1979"
	"github.com/spf13/cobra"
)

func init() {
	decodeCmd.Flags().String("pids", "", "comma-separated hex PIDs expected in the response, e.g. 0C,0D")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <sid-hex> <payload-hex>",
	Short: "decode an emission-PID response into signal values",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDecoder(cmd)
		if err != nil {
			return err
		}
		sidBytes, err := parseHexPayload(args[0])
		if err != nil || len(sidBytes) != 1 {
			return fmt.Errorf("invalid sid %q", args[0])
		}
		data, err := parseHexPayload(args[1])
		if err != nil {
			return err
		}

		pidsFlag, _ := cmd.Flags().GetString("pids")
		pids, err := parsePIDList(pidsFlag)
		if err != nil {
			return err
		}

		info, err := d.DecodeEmissionPIDs(j1979.SID(sidBytes[0]), pids, data)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(info.Values))
		for name := range info.Values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(color.GreenString(name), "=", info.Values[name])
		}
		return nil
	},
}

func parsePIDList(s string) ([]j1979.PID, error) {
	if s == "" {
		return nil, nil
	}
	var pids []j1979.PID
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			b, err := parseHexPayload(s[start:i])
			if err != nil || len(b) != 1 {
				return nil, fmt.Errorf("invalid pid in list %q", s[start:i])
			}
			pids = append(pids, j1979.PID(b[0]))
			start = i + 1
		}
	}
	return pids, nil
}
