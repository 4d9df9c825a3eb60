package j1979

import "testing"

func TestSetDecoderDictionaryReplacesReference(t *testing.T) {
	d := NewDecoder(nil)
	first := MapDictionary{0x0C: {SizeInBytes: 2}}
	second := MapDictionary{0x0D: {SizeInBytes: 1}}

	d.SetDecoderDictionary(first)
	if !d.dictionary().Contains(0x0C) {
		t.Fatal("expected first dictionary to be active")
	}

	d.SetDecoderDictionary(second)
	if d.dictionary().Contains(0x0C) {
		t.Fatal("first dictionary should no longer be observed after replacement")
	}
	if !d.dictionary().Contains(0x0D) {
		t.Fatal("expected second dictionary to be active")
	}
}

func TestDecoderDeterministicOutput(t *testing.T) {
	dict := MapDictionary{
		0x0C: {SizeInBytes: 2, Signals: []SignalFormula{
			{SignalID: "RPM", FirstBitPosition: 0, SizeInBits: 16, Factor: 0.25},
		}},
	}
	data := []byte{0x41, 0x0C, 0x1A, 0xF8}

	d := NewDecoder(nil)
	d.SetDecoderDictionary(dict)

	a, err := d.DecodeEmissionPIDs(ServiceCurrentData, []PID{0x0C}, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := d.DecodeEmissionPIDs(ServiceCurrentData, []PID{0x0C}, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Values["RPM"] != b.Values["RPM"] {
		t.Fatalf("non-deterministic output: %v vs %v", a.Values["RPM"], b.Values["RPM"])
	}
}
