package j1979

// SignalFormula describes one numeric field embedded in a PID's data
// bytes: value = raw*Factor + Offset, where raw is the bit field at
// [FirstBitPosition, FirstBitPosition+SizeInBits), indexed from the
// start of the PID's first data byte. Sub-byte fields are extracted
// anchored at the low end of their containing byte (see extractRaw).
type SignalFormula struct {
	SignalID         string  `json:"signal_id"`
	FirstBitPosition uint16  `json:"first_bit_position"`
	SizeInBits       uint16  `json:"size_in_bits"`
	Factor           float64 `json:"factor"`
	Offset           float64 `json:"offset"`
}

// PIDEntry is one dictionary record: how many bytes an ECU returns
// for a PID, and the signals packed into those bytes.
type PIDEntry struct {
	SizeInBytes uint16
	Signals     []SignalFormula
}

// Dictionary maps a PID to its decoding metadata. Implementations are
// immutable for the lifetime of a decode call; a Decoder swaps its
// reference between calls via SetDecoderDictionary, never mutates one
// in place.
type Dictionary interface {
	Contains(pid PID) bool
	SizeInBytes(pid PID) uint16
	Signals(pid PID) []SignalFormula
}

// MapDictionary is the straightforward Dictionary implementation: a
// PID-keyed map built once from a decoder manifest and handed to a
// Decoder as a read-only reference.
type MapDictionary map[PID]PIDEntry

func (d MapDictionary) Contains(pid PID) bool {
	_, ok := d[pid]
	return ok
}

func (d MapDictionary) SizeInBytes(pid PID) uint16 {
	return d[pid].SizeInBytes
}

func (d MapDictionary) Signals(pid PID) []SignalFormula {
	return d[pid].Signals
}
