package j1979

// DTCInfo is the result of a stored/pending/permanent DTC decode: the
// SID echoed back, plus the DTC strings in payload order.
type DTCInfo struct {
	SID  SID
	DTCs []string
}

// DecodeDTCs decodes a SID 03/07/0A response: a count byte followed
// by count two-byte DTC codes.
func (d *Decoder) DecodeDTCs(sid SID, data []byte) (DTCInfo, error) {
	const minLen = 2
	if err := validateEnvelope(sid, data, minLen); err != nil {
		d.log.Warn("DecodeDTCs", "invalid envelope")
		return DTCInfo{}, &DecodeError{SID: sid, Err: err}
	}

	count := int(data[1])
	info := DTCInfo{SID: sid}
	if count == 0 {
		return info, nil
	}

	if len(data) != 2+2*count {
		d.log.Warn("DecodeDTCs", "corrupt frame")
		return DTCInfo{}, &DecodeError{SID: sid, Err: ErrCorruptFrame}
	}

	for i := 0; i < count; i++ {
		a, b := data[2+2*i], data[2+2*i+1]
		info.DTCs = append(info.DTCs, formatDTC(a, b))
	}

	if len(info.DTCs) == 0 {
		return DTCInfo{}, &DecodeError{SID: sid, Err: ErrEmptyResult}
	}
	return info, nil
}

var dtcDomain = [4]byte{'P', 'C', 'B', 'U'}

const hexDigits = "0123456789ABCDEF"

// formatDTC renders a 2-byte DTC code into its canonical 5-character
// form, e.g. "P0123". Per J1979 8.3.1: the top two bits of the first
// byte select the domain letter, the next two bits are the first hex
// digit, the remaining 12 bits are the last three hex digits.
func formatDTC(a, b byte) string {
	code := make([]byte, 5)
	code[0] = dtcDomain[a>>6&0x03]
	code[1] = hexDigits[a>>4&0x03]
	code[2] = hexDigits[a&0x0F]
	code[3] = hexDigits[b>>4&0x0F]
	code[4] = hexDigits[b&0x0F]
	return string(code)
}
