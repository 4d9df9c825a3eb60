package j1979

// EmissionInfo is the result of an emission decode: the SID echoed
// back, plus signal_id -> numeric value. Insertion order is not
// significant; a later formula for the same SignalID always
// overwrites an earlier one.
type EmissionInfo struct {
	SID    SID
	Values map[string]float64
}

// DecodeEmissionPIDs walks sid's response, PID by PID, consulting the
// current Dictionary for each PID's length and embedded signals,
// extracting bit fields and applying scale/offset.
//
// pids is the expected PID list echoed from the original request: it
// must match, in order, the PIDs actually present in data, and the
// dictionary-declared lengths must account for the full payload, or
// the whole call fails before any extraction is attempted
// (isPIDResponseValid). Once that precondition holds, a PID missing
// from the dictionary mid-walk aborts the remainder of the walk —
// alignment is lost and cannot be recovered — but signals already
// decoded are kept.
func (d *Decoder) DecodeEmissionPIDs(sid SID, pids []PID, data []byte) (EmissionInfo, error) {
	const minLen = 3 // positive-response byte + at least one PID byte + 1 data byte
	if err := validateEnvelope(sid, data, minLen); err != nil {
		d.log.Warn("DecodeEmissionPIDs", "invalid envelope")
		return EmissionInfo{}, &DecodeError{SID: sid, Err: err}
	}

	dict := d.dictionary()
	if dict == nil {
		d.log.Warn("DecodeEmissionPIDs", "no decoder dictionary set")
		return EmissionInfo{}, &DecodeError{SID: sid, Err: ErrMissingDictionary}
	}

	if !isPIDResponseValid(pids, data, dict) {
		d.log.Warn("DecodeEmissionPIDs", "response does not match expected pid list")
		return EmissionInfo{}, &DecodeError{SID: sid, Err: ErrInvalidResponseShape}
	}

	return d.walkEmissionPIDs(sid, data, dict)
}

// walkEmissionPIDs is the extraction walk described in spec section
// 4.5: it reads the payload PID-by-PID independently of any expected
// PID list, stopping the moment a PID isn't in dict. It is split out
// from DecodeEmissionPIDs so the alignment-safety invariant — a
// dictionary miss never lets a later PID's signals leak into the
// result — can be exercised directly against payloads that wouldn't
// pass isPIDResponseValid's stricter echo check.
func (d *Decoder) walkEmissionPIDs(sid SID, data []byte, dict Dictionary) (EmissionInfo, error) {
	info := EmissionInfo{SID: sid, Values: make(map[string]float64)}
	cursor := 1
	for cursor < len(data) {
		pid := PID(data[cursor])
		cursor++

		if !dict.Contains(pid) {
			d.log.Trace("DecodeEmissionPIDs", "pid missing from decoder dictionary, aborting walk")
			break
		}

		length := int(dict.SizeInBytes(pid))
		remaining := len(data) - cursor
		if remaining < length {
			d.log.Warn("DecodeEmissionPIDs", "truncated pid record, aborting walk")
			break
		}

		for _, f := range dict.Signals(pid) {
			if !isFormulaValid(pid, f, dict) {
				d.log.Trace("DecodeEmissionPIDs", "formula failed range check, skipping signal")
				continue
			}
			raw := extractRaw(data[cursor:cursor+length], f)
			info.Values[f.SignalID] = float64(raw)*f.Factor + f.Offset
		}

		cursor += length
	}

	if len(info.Values) == 0 {
		return EmissionInfo{}, &DecodeError{SID: sid, Err: ErrEmptyResult}
	}
	return info, nil
}

// extractRaw reads formula f's bit field out of record, the data
// bytes belonging to a single PID (record[0] is the PID's first data
// byte, i.e. data_start in spec terms).
//
// Sub-byte fields are anchored at the low end of their containing
// byte: read the byte, shift right by the bit position within it,
// mask to width. Fields 8 bits or wider are byte-aligned by
// isFormulaValid's contract and are read as big-endian bytes.
func extractRaw(record []byte, f SignalFormula) uint64 {
	byteIndex := int(f.FirstBitPosition / 8)

	if f.SizeInBits < 8 {
		b := record[byteIndex]
		shift := f.FirstBitPosition % 8
		mask := byte(0xFF >> (8 - f.SizeInBits))
		return uint64(b>>shift) & uint64(mask)
	}

	var raw uint64
	numBytes := int(f.SizeInBits / 8)
	for i := 0; i < numBytes; i++ {
		raw = raw<<8 | uint64(record[byteIndex+i])
	}
	return raw
}
