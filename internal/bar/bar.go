// Package bar reports batch-decode progress: how many trace lines have
// been processed, and how many of those failed to decode.
package bar

import (
	"fmt"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// DecodeBar wraps a progressbar.ProgressBar with a running failure
// count, since a batch decode of a trace log cares about two numbers
// at once — how far through the file it is, and how many lines so far
// didn't decode — not just completion.
type DecodeBar struct {
	bar    *progressbar.ProgressBar
	total  int
	failed int
}

// New returns a DecodeBar sized for total trace lines.
func New(total int) *DecodeBar {
	b := progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(fmt.Sprintf("decoding %d trace lines", total)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &DecodeBar{bar: b, total: total}
}

// Advance records one line's outcome and repaints the description with
// a running failure count once any line has failed.
func (d *DecodeBar) Advance(ok bool) {
	if !ok {
		d.failed++
		d.bar.Describe(fmt.Sprintf("[red]decoding %d trace lines (%d failed)[reset]", d.total, d.failed))
	}
	d.bar.Add(1)
}
