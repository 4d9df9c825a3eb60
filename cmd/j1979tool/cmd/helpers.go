package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/roffe/j1979"
	"github.com/spf13/cobra"
)

// parseHexPayload accepts either "41 0C 1A F8" or "410C1AF8".
func parseHexPayload(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "0x", "")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload %q: %w", s, err)
	}
	return data, nil
}

func newDecoder(cmd *cobra.Command) (*j1979.Decoder, error) {
	trace, _ := cmd.Flags().GetBool(flagTrace)
	d := j1979.NewDecoder(j1979.NewLogger(trace))

	path, _ := cmd.Flags().GetString(flagDictionary)
	if path != "" {
		dict, err := loadDictionary(path)
		if err != nil {
			return nil, err
		}
		d.SetDecoderDictionary(dict)
	}
	return d, nil
}
