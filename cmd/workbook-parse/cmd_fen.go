package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmoulton/workbook-parse-go/internal/config"
	"github.com/pmoulton/workbook-parse-go/internal/engine"
	"github.com/pmoulton/workbook-parse-go/internal/parser"
)

// newFENCmd prints the position reached at the end of each record's
// mainline, one FEN per record.
func newFENCmd(logger *zap.SugaredLogger) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "fen <file>...",
		Short: "Print the final mainline FEN of every record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if quiet {
				cfg.Verbosity = 0
				cfg.LogFile = io.Discard
			}

			out := cmd.OutOrStdout()
			for _, name := range args {
				data, err := os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("reading %s: %w", name, err)
				}

				for i, record := range parser.SplitRecords(string(data)) {
					t, err := parser.NewParser(cfg).Parse(record)
					if err != nil {
						logger.Errorw("record failed",
							"file", name,
							"record", i+1,
							"error", err)
						continue
					}

					tip := t.Root
					for tip.Mainline() != nil {
						tip = tip.Mainline()
					}
					fmt.Fprintln(out, engine.PositionToFEN(tip.Position))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-record diagnostics")

	return cmd
}
