// workbook-parse is a tool for parsing chess workbook records (PGN-style
// movetext with embedded vendor commands) into position trees.
package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const programVersion = "0.1.0"

var cfgFile string

func main() {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	cobra.OnInitialize(initConfig)

	rootCmd := &cobra.Command{
		Use:     "workbook-parse",
		Short:   "Parse chess workbook records into position trees",
		Version: programVersion,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default .workbook-parse.yaml in the working directory)")

	rootCmd.AddCommand(newParseCmd(logger))
	rootCmd.AddCommand(newFENCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger.
func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

// initConfig loads defaults from a viper config file when one exists;
// a missing file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".workbook-parse")
		viper.SetConfigType("yaml")
	}
	viper.SetDefault("workers", runtime.NumCPU())
	_ = viper.ReadInConfig()
}
