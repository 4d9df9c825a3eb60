package transport

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"
)

// ELM327 is a line-oriented source of OBD response payloads read over
// a serial ELM327-class adapter: it writes an AT-dialect request line
// ("0100\r") and reads back the hex-encoded ECU response up to the
// adapter's "> " prompt, grounded on gocan's adapter_elm327.go serial
// setup (same baud/parity/databits/stopbit shape, same read-timeout
// discipline).
type ELM327 struct {
	port   serial.Port
	reader *bufio.Reader
}

// OpenELM327 opens portName at baud and resets the adapter's buffers.
func OpenELM327(portName string, baud int) (*ELM327, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open com port %q: %w", portName, err)
	}
	p.SetReadTimeout(3 * time.Millisecond)
	p.ResetOutputBuffer()
	p.ResetInputBuffer()
	return &ELM327{port: p, reader: bufio.NewReader(p)}, nil
}

func (el *ELM327) Close() error {
	if el.port == nil {
		return nil
	}
	err := el.port.Close()
	el.port = nil
	return err
}

// Request writes mode+pid as an OBD request line (e.g. "0100") and
// returns the decoded response payload bytes: the prompt, whitespace
// and the adapter's line-feed framing are stripped, and the remaining
// hex pairs are decoded in order — this is the "already reassembled
// payload" the decoder expects.
func (el *ELM327) Request(mode, pid byte) ([]byte, error) {
	line := fmt.Sprintf("%02X%02X\r", mode, pid)
	if _, err := el.port.Write([]byte(line)); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}
	return el.readResponse()
}

func (el *ELM327) readResponse() ([]byte, error) {
	var sb strings.Builder
	for {
		b, err := el.reader.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		if b == '>' {
			break
		}
		sb.WriteByte(b)
	}
	return parseHexResponse(sb.String())
}

// parseHexResponse strips everything but hex digits from raw (the
// adapter interleaves whitespace and line breaks with the actual
// response) and decodes the remainder into bytes. An echoed request
// line is itself made of hex digits, so it is not removed and ends up
// in front of the response bytes. A trailing odd digit, left over from
// a truncated read, is dropped rather than treated as an error.
func parseHexResponse(raw string) ([]byte, error) {
	hexDigits := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'F', r >= 'a' && r <= 'f':
			return r
		default:
			return -1
		}
	}, raw)

	if len(hexDigits)%2 != 0 {
		hexDigits = hexDigits[:len(hexDigits)-1]
	}
	return hex.DecodeString(hexDigits)
}
