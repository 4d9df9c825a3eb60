package transport

import (
	"context"
	"log"

	"github.com/avast/retry-go/v4"
)

// Source is the minimal request/response contract the poller needs;
// ELM327 satisfies it.
type Source interface {
	Request(mode, pid byte) ([]byte, error)
}

// Poll requests mode/pid from src, retrying on transient failures.
// This is the request-scheduling/retry collaborator spec.md places
// out of the decoder's scope (§1): it lives entirely on the transport
// side of the boundary and returns a raw payload for the decoder to
// consume, never decoding anything itself.
func Poll(ctx context.Context, src Source, mode, pid byte, attempts uint) ([]byte, error) {
	var data []byte
	err := retry.Do(
		func() error {
			d, err := src.Request(mode, pid)
			if err != nil {
				return err
			}
			data = d
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("transport: retry %d requesting mode 0x%02X pid 0x%02X: %v", n, mode, pid, err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return data, nil
}
