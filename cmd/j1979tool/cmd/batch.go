package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/roffe/j1979"
	"github.com/roffe/j1979/internal/bar"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	batchCmd.Flags().String("pids", "", "comma-separated hex PIDs expected in each response, e.g. 0C,0D")
	batchCmd.Flags().Int("workers", 4, "concurrent decode workers")
	rootCmd.AddCommand(batchCmd)
}

// batchCmd decodes every payload-hex line of a trace log concurrently,
// all under the single sid given on the command line. Each line is an independent decode call — the
// decoder's own contract (spec.md §5) stays single-threaded and
// synchronous per call; only the caller-side fan-out across many
// calls is concurrent, mirroring gocan's errgroup usage in
// adapter/elm327.go and adapter/stn.go for independent bus work.
var batchCmd = &cobra.Command{
	Use:   "batch <sid-hex> <trace-file>",
	Short: "decode every emission-PID response line of a trace log",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDecoder(cmd)
		if err != nil {
			return err
		}
		sidBytes, err := parseHexPayload(args[0])
		if err != nil || len(sidBytes) != 1 {
			return fmt.Errorf("invalid sid %q", args[0])
		}
		sid := j1979.SID(sidBytes[0])

		pidsFlag, _ := cmd.Flags().GetString("pids")
		pids, err := parsePIDList(pidsFlag)
		if err != nil {
			return err
		}

		lines, err := readLines(args[1])
		if err != nil {
			return err
		}

		workers, _ := cmd.Flags().GetInt("workers")
		results := make([]j1979.EmissionInfo, len(lines))
		errs := make([]error, len(lines))

		pb := bar.New(len(lines))

		var mu sync.Mutex
		g := new(errgroup.Group)
		g.SetLimit(workers)
		for i, line := range lines {
			i, line := i, line
			g.Go(func() error {
				data, err := parseHexPayload(line)
				if err != nil {
					errs[i] = err
					mu.Lock()
					pb.Advance(false)
					mu.Unlock()
					return nil
				}
				info, err := d.DecodeEmissionPIDs(sid, pids, data)
				mu.Lock()
				results[i], errs[i] = info, err
				pb.Advance(err == nil)
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		decoded, failed := 0, 0
		for i, info := range results {
			if errs[i] != nil {
				failed++
				continue
			}
			decoded++
			for name, value := range info.Values {
				fmt.Printf("line %d: %s = %v\n", i, name, value)
			}
		}
		fmt.Printf("\ndecoded %d/%d lines (%d failed)\n", decoded, len(lines), failed)
		return nil
	},
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
