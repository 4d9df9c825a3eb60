package j1979

import "sort"

// DecodeSupportedPIDs decodes a SID 01/02 response advertising which
// PIDs the ECU supports. The response is a sequence of one or more
// 5-byte records: [rangeSelector, b0, b1, b2, b3], each bitmap byte
// covering 8 consecutive PIDs above the record's range selector.
//
// A PID is included in the result only if it is both advertised and
// present in the current dictionary — a PID we have no formula for
// would misalign every emission decode that followed it, so there is
// no point reporting it as supported. When no dictionary has been set,
// every advertised PID that is not a range selector is kept.
func (d *Decoder) DecodeSupportedPIDs(sid SID, data []byte) ([]PID, error) {
	const minLen = 6 // positive-response byte + 1 range selector + 4 bitmap bytes
	if err := validateEnvelope(sid, data, minLen); err != nil {
		d.log.Warn("DecodeSupportedPIDs", "invalid envelope")
		return nil, &DecodeError{SID: sid, Err: err}
	}

	dict := d.dictionary()

	var out []PID
	rangeIndex := 0 // number of range-selector bytes seen so far, 1-based once incremented
	for i := 1; i < len(data); i++ {
		if (i-1)%5 == 0 {
			rangeIndex++
			continue
		}
		b := data[i]
		for j := 0; j < 8; j++ {
			if b&(1<<uint(j)) == 0 {
				continue
			}
			advertised := PID((i-rangeIndex)*8 - j)
			if isRangeSelector(advertised) {
				continue
			}
			if dict != nil && !dict.Contains(advertised) {
				continue
			}
			out = append(out, advertised)
		}
	}

	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	out = dedupeSortedPIDs(out)

	if len(out) == 0 {
		d.log.Warn("DecodeSupportedPIDs", "no supported pids advertised")
		return nil, &DecodeError{SID: sid, Err: ErrInvalidResponseShape}
	}
	return out, nil
}

func dedupeSortedPIDs(pids []PID) []PID {
	if len(pids) < 2 {
		return pids
	}
	out := pids[:1]
	for _, p := range pids[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
