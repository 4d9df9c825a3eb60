package j1979

import "sync/atomic"

// Decoder is stateless between calls except for its reference to the
// current Dictionary. A single Decoder must not be shared between
// goroutines that call its decode methods concurrently without
// external synchronization on the call itself — but SetDecoderDictionary
// may always run concurrently with a decode in flight: the dictionary
// reference is published through an atomic.Pointer, so a swap always
// happens-before the next decode call observes it.
type Decoder struct {
	dict atomic.Pointer[Dictionary]
	log  Logger
}

// NewDecoder returns a Decoder with no dictionary set. Emission decodes
// will fail with ErrMissingDictionary until SetDecoderDictionary is
// called.
func NewDecoder(log Logger) *Decoder {
	if log == nil {
		log = NewLogger(false)
	}
	return &Decoder{log: log}
}

// SetDecoderDictionary replaces the dictionary a Decoder consults for
// emission decodes and supported-PID resolution. The previous
// dictionary, if any, is left untouched: dictionaries are never
// mutated in place, only replaced.
func (d *Decoder) SetDecoderDictionary(dict Dictionary) {
	d.dict.Store(&dict)
}

func (d *Decoder) dictionary() Dictionary {
	p := d.dict.Load()
	if p == nil {
		return nil
	}
	return *p
}

// validateEnvelope confirms data begins with the positive-response
// marker for sid and carries at least minLen bytes.
func validateEnvelope(sid SID, data []byte, minLen int) error {
	if len(data) < minLen {
		return ErrInvalidEnvelope
	}
	if data[0] != sid.positiveResponse() {
		return ErrInvalidEnvelope
	}
	return nil
}
