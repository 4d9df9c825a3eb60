package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roffe/j1979"
)

// jsonPIDEntry mirrors j1979.PIDEntry with string keys so a dictionary
// file can be hand-written or emitted by whatever parses a cloud
// decoder manifest upstream of this tool — that provisioning step
// itself is out of this module's scope.
type jsonPIDEntry struct {
	SizeInBytes uint16                `json:"size_in_bytes"`
	Signals     []j1979.SignalFormula `json:"signals"`
}

func loadDictionary(path string) (j1979.MapDictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	var byHex map[string]jsonPIDEntry
	if err := json.Unmarshal(raw, &byHex); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}

	dict := make(j1979.MapDictionary, len(byHex))
	for k, v := range byHex {
		var pid byte
		if _, err := fmt.Sscanf(k, "0x%02X", &pid); err != nil {
			return nil, fmt.Errorf("dictionary key %q: %w", k, err)
		}
		dict[j1979.PID(pid)] = j1979.PIDEntry{SizeInBytes: v.SizeInBytes, Signals: v.Signals}
	}
	return dict, nil
}
