package j1979

// isPIDResponseValid walks data starting at index 1, expecting, in
// order, each PID from pids followed by dictionary[pid].SizeInBytes
// data bytes. It fails if the payload ends early, a PID byte does not
// match the expected PID, a PID is missing from the dictionary, or
// the walk does not land exactly on len(data).
func isPIDResponseValid(pids []PID, data []byte, dict Dictionary) bool {
	i := 1
	for _, pid := range pids {
		if i >= len(data) || PID(data[i]) != pid {
			return false
		}
		if !dict.Contains(pid) {
			return false
		}
		i += int(dict.SizeInBytes(pid)) + 1
	}
	return i == len(data)
}

// isFormulaValid reports whether f's bit range fits entirely within
// pid's declared byte window and, for fields 8 bits or wider, is
// byte-aligned at both ends.
func isFormulaValid(pid PID, f SignalFormula, dict Dictionary) bool {
	if !dict.Contains(pid) {
		return false
	}
	width := dict.SizeInBytes(pid) * 8
	if f.FirstBitPosition >= width {
		return false
	}
	if f.FirstBitPosition+f.SizeInBits > width {
		return false
	}
	if f.SizeInBits >= 8 && (f.SizeInBits%8 != 0 || f.FirstBitPosition%8 != 0) {
		return false
	}
	return true
}
