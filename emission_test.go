package j1979

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestDecodeEmissionPIDsSubByteSignals(t *testing.T) {
	dict := MapDictionary{
		0x03: {
			SizeInBytes: 2,
			Signals: []SignalFormula{
				{SignalID: "A", FirstBitPosition: 0, SizeInBits: 4, Factor: 1},
				{SignalID: "B", FirstBitPosition: 4, SizeInBits: 4, Factor: 1},
			},
		},
	}
	d := NewDecoder(nil)
	d.SetDecoderDictionary(dict)

	info, err := d.DecodeEmissionPIDs(ServiceCurrentData, []PID{0x03}, []byte{0x41, 0x03, 0xAB, 0x00})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := info.Values["A"], 0x0B; got != float64(want) {
		t.Errorf("A = %v, want %v", got, want)
	}
	if got, want := info.Values["B"], 0x0A; got != float64(want) {
		t.Errorf("B = %v, want %v", got, want)
	}
}

func TestDecodeEmissionPIDsMultiByteSignal(t *testing.T) {
	dict := MapDictionary{
		0x0C: {
			SizeInBytes: 2,
			Signals: []SignalFormula{
				{SignalID: "RPM", FirstBitPosition: 0, SizeInBits: 16, Factor: 0.25},
			},
		},
	}
	d := NewDecoder(nil)
	d.SetDecoderDictionary(dict)

	info, err := d.DecodeEmissionPIDs(ServiceCurrentData, []PID{0x0C}, []byte{0x41, 0x0C, 0x1A, 0xF8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := info.Values["RPM"], 1726.0; got != want {
		t.Errorf("RPM = %v, want %v", got, want)
	}
}

func TestDecodeEmissionPIDsMissingDictionary(t *testing.T) {
	d := NewDecoder(nil)
	_, err := d.DecodeEmissionPIDs(ServiceCurrentData, []PID{0x0C}, []byte{0x41, 0x0C, 0x1A, 0xF8})
	if !errors.Is(err, ErrMissingDictionary) {
		t.Fatalf("got %v, want ErrMissingDictionary", err)
	}
}

func TestDecodeEmissionPIDsRejectsMismatchedEcho(t *testing.T) {
	dict := MapDictionary{0x0C: {SizeInBytes: 2}}
	d := NewDecoder(nil)
	d.SetDecoderDictionary(dict)

	_, err := d.DecodeEmissionPIDs(ServiceCurrentData, []PID{0x0D}, []byte{0x41, 0x0C, 0x1A, 0xF8})
	if !errors.Is(err, ErrInvalidResponseShape) {
		t.Fatalf("got %v, want ErrInvalidResponseShape", err)
	}
}

func TestDecodeEmissionPIDsDuplicateSignalIDLastWriteWins(t *testing.T) {
	dict := MapDictionary{
		0x0C: {
			SizeInBytes: 2,
			Signals: []SignalFormula{
				{SignalID: "X", FirstBitPosition: 0, SizeInBits: 8, Factor: 1},
				{SignalID: "X", FirstBitPosition: 8, SizeInBits: 8, Factor: 1},
			},
		},
	}
	d := NewDecoder(nil)
	d.SetDecoderDictionary(dict)

	info, err := d.DecodeEmissionPIDs(ServiceCurrentData, []PID{0x0C}, []byte{0x41, 0x0C, 0x11, 0x22})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := info.Values["X"], float64(0x22); got != want {
		t.Errorf("X = %v, want %v (second formula should win)", got, want)
	}
}

// TestWalkEmissionPIDsAlignmentSafety exercises the extraction walk
// directly: a PID mid-payload that is absent from the dictionary
// aborts the walk, and no signal belonging to a PID after it ever
// appears in the output.
func TestWalkEmissionPIDsAlignmentSafety(t *testing.T) {
	dict := MapDictionary{
		0x05: {SizeInBytes: 1, Signals: []SignalFormula{
			{SignalID: "FIVE", FirstBitPosition: 0, SizeInBits: 8, Factor: 1},
		}},
		// 0x06 intentionally absent.
	}
	d := NewDecoder(nil)
	info, err := d.walkEmissionPIDs(ServiceCurrentData, []byte{0x41, 0x05, 0x7B, 0x06, 0xAA}, dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(info.Values) != 1 || info.Values["FIVE"] != 0x7B {
		t.Fatalf("got %v, want only FIVE=0x7B", info.Values)
	}
}

func TestWalkEmissionPIDsZeroSignalPIDAdvancesCursor(t *testing.T) {
	dict := MapDictionary{
		0x01: {SizeInBytes: 1}, // no signals: a no-op record
		0x0C: {SizeInBytes: 2, Signals: []SignalFormula{
			{SignalID: "RPM", FirstBitPosition: 0, SizeInBits: 16, Factor: 0.25},
		}},
	}
	d := NewDecoder(nil)
	info, err := d.walkEmissionPIDs(ServiceCurrentData, []byte{0x41, 0x01, 0x00, 0x0C, 0x1A, 0xF8}, dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Values["RPM"] != 1726.0 {
		t.Fatalf("got %v, want RPM=1726.0", info.Values)
	}
}

func TestWalkEmissionPIDsTruncatedRecordStopsWithoutPanicking(t *testing.T) {
	dict := MapDictionary{
		0x0C: {SizeInBytes: 2, Signals: []SignalFormula{
			{SignalID: "RPM", FirstBitPosition: 0, SizeInBits: 16, Factor: 0.25},
		}},
	}
	d := NewDecoder(nil)
	_, err := d.walkEmissionPIDs(ServiceCurrentData, []byte{0x41, 0x0C, 0x1A}, dict)
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("got %v, want ErrEmptyResult", err)
	}
}

func TestExtractRawFormulaValidatorSoundness(t *testing.T) {
	dict := MapDictionary{0x0C: {SizeInBytes: 4}}
	record := []byte{0x11, 0x22, 0x33, 0x44}
	for firstBit := uint16(0); firstBit < 32; firstBit++ {
		for size := uint16(1); size <= 32-firstBit; size++ {
			f := SignalFormula{FirstBitPosition: firstBit, SizeInBits: size}
			if !isFormulaValid(0x0C, f, dict) {
				continue
			}
			// Must never read past the declared record.
			got := extractRaw(record, f)
			_ = got
		}
	}
}

// TestEmissionRoundTrip is spec.md's property: for any dictionary and
// any synthetic payload assembled as [0x41, (pid, bytes...)*], decode
// returns exactly one entry per signal formula, with value
// raw*factor+offset.
func TestEmissionRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	dict := MapDictionary{
		0x04: {SizeInBytes: 1, Signals: []SignalFormula{
			{SignalID: "LOAD", FirstBitPosition: 0, SizeInBits: 8, Factor: 100.0 / 255.0},
		}},
		0x0C: {SizeInBytes: 2, Signals: []SignalFormula{
			{SignalID: "RPM", FirstBitPosition: 0, SizeInBits: 16, Factor: 0.25},
		}},
		0x11: {SizeInBytes: 1, Signals: []SignalFormula{
			{SignalID: "THROTTLE_HIGH", FirstBitPosition: 0, SizeInBits: 4, Factor: 1, Offset: 0},
			{SignalID: "THROTTLE_LOW", FirstBitPosition: 4, SizeInBits: 4, Factor: 1, Offset: 0},
		}},
	}
	pids := []PID{0x04, 0x0C, 0x11}

	for iter := 0; iter < 20; iter++ {
		data := []byte{0x41}
		wantRaw := map[PID][]byte{}
		for _, pid := range pids {
			entry := dict[pid]
			record := make([]byte, entry.SizeInBytes)
			rng.Read(record)
			wantRaw[pid] = record
			data = append(data, byte(pid))
			data = append(data, record...)
		}

		d := NewDecoder(nil)
		d.SetDecoderDictionary(dict)
		info, err := d.DecodeEmissionPIDs(ServiceCurrentData, pids, data)
		if err != nil {
			t.Fatalf("iter %d: unexpected error: %v", iter, err)
		}

		wantSignals := 0
		for _, pid := range pids {
			wantSignals += len(dict[pid].Signals)
		}
		if len(info.Values) > wantSignals {
			t.Fatalf("iter %d: got %d values, at most %d expected", iter, len(info.Values), wantSignals)
		}

		for _, pid := range pids {
			for _, f := range dict[pid].Signals {
				raw := extractRaw(wantRaw[pid], f)
				want := float64(raw)*f.Factor + f.Offset
				got, ok := info.Values[f.SignalID]
				if !ok {
					t.Fatalf("iter %d: missing signal %s", iter, f.SignalID)
				}
				if got != want {
					t.Fatalf("iter %d: %s = %v, want %v", iter, f.SignalID, got, want)
				}
			}
		}
	}
}

// TestSupportedPIDsMultiRangeCoversRepeatedRecords exercises the
// documented open question: repeated 5-byte range records in a single
// payload all resolve correctly, not just the first.
func TestSupportedPIDsMultiRangeCoversRepeatedRecords(t *testing.T) {
	dict := dictWithPIDs(0x01, 0x0C, 0x0D, 0x1C, 0x1F, 0x21, 0x28)
	d := NewDecoder(nil)
	d.SetDecoderDictionary(dict)

	data := []byte{
		0x41,
		0x00, 0x80, 0x18, 0x00, 0x13, // range 0x00: pids 1, 12, 13, 28, 31
		0x20, 0x81, 0x00, 0x00, 0x00, // range 0x20: bits 7 and 0 -> pids 33, 40
	}
	got, err := d.DecodeSupportedPIDs(ServiceCurrentData, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fmt.Sprintf("%v", []PID{0x01, 0x0C, 0x0D, 0x1C, 0x1F, 0x21, 0x28})
	if got2 := fmt.Sprintf("%v", got); got2 != want {
		t.Errorf("got %v, want %v", got2, want)
	}
}
