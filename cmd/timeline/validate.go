package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/heliodyne/sdo-timeline/internal/config"
	"github.com/heliodyne/sdo-timeline/internal/publish"
	"github.com/heliodyne/sdo-timeline/internal/render"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

var validateCmd = &cobra.Command{
	Use:   "validate [timeline.csv]",
	Short: "Check a published timeline for table invariants",
	Long: `validate re-parses a published timeline.csv and verifies the table
invariants: every row has a parseable start, every end is a timestamp or the
Unknown sentinel, rows are ordered by start ascending, and re-rendering the
parsed table reproduces the file byte for byte. Without an argument it checks
the configured output directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			path = filepath.Join(cfg.OutputDir, publish.CSVFile)
		}

		phases, err := validateTable(path)
		if err != nil {
			return err
		}

		failed := 0
		for _, p := range phases {
			if p.passed() {
				fmt.Printf("PASS %s\n", p.name)
				continue
			}
			failed++
			fmt.Printf("FAIL %s\n", p.name)
			for _, msg := range p.errors {
				fmt.Printf("  %s\n", msg)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d phases failed", failed, len(phases))
		}
		fmt.Printf("%s: all %d phases passed\n", path, len(phases))
		return nil
	},
}

func validateTable(path string) ([]*phase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parse := &phase{name: "parse"}
	entries, err := render.ReadCSV(bytes.NewReader(data))
	if err != nil {
		parse.errorf("%v", err)
		return []*phase{parse}, nil
	}

	ordering := &phase{name: "ordering"}
	for i := 1; i < len(entries); i++ {
		if entries[i].Start.Before(entries[i-1].Start) {
			ordering.errorf("row %d starts before row %d (%s < %s)",
				i+2, i+1, entries[i].StartLabel(), entries[i-1].StartLabel())
		}
	}

	roundTrip := &phase{name: "round-trip"}
	var rendered bytes.Buffer
	if err := render.WriteCSV(&rendered, entries); err != nil {
		roundTrip.errorf("%v", err)
	} else if !bytes.Equal(rendered.Bytes(), data) {
		roundTrip.errorf("re-rendering %d entries did not reproduce the file", len(entries))
	}

	return []*phase{parse, ordering, roundTrip}, nil
}
