package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pmoulton/workbook-parse-go/internal/config"
	"github.com/pmoulton/workbook-parse-go/internal/output"
	"github.com/pmoulton/workbook-parse-go/internal/worker"
)

// newParseCmd parses one or more workbook files and re-emits every record,
// either as wrapped movetext or as a JSON document.
func newParseCmd(logger *zap.SugaredLogger) *cobra.Command {
	var (
		asJSON  bool
		workers int
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse workbook files and re-emit their records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 {
				workers = viper.GetInt("workers")
			}

			cfg := config.NewConfig()
			cfg.Workers = workers
			if quiet {
				cfg.Verbosity = 0
				cfg.LogFile = io.Discard
			}

			var writer output.TreeWriter
			if asJSON {
				writer = output.NewJSONWriter(cmd.OutOrStdout())
			} else {
				writer = output.NewNotationWriter(cmd.OutOrStdout())
			}

			for _, name := range args {
				data, err := os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("reading %s: %w", name, err)
				}

				results := worker.ParseArchive(string(data), cfg, workers)
				for _, res := range results {
					if res.Err != nil {
						logger.Errorw("record failed",
							"file", name,
							"record", res.Index+1,
							"error", res.Err)
						continue
					}
					if err := writer.WriteTree(res.Tree); err != nil {
						return fmt.Errorf("writing record %d of %s: %w", res.Index+1, name, err)
					}
				}
			}

			return writer.Close()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit records as JSON instead of movetext")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel record workers (default from config)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-record diagnostics")

	return cmd
}
