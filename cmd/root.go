package cmd

import (
	"fmt"
	"os"

	"floorops/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "floorops",
	Short: "Flooring back-office service",
	Long: `floorops is the backend for the flooring back office. Its centerpiece is
the spreadsheet cleaning engine: vendor price lists go in, normalized sizes,
canonical product names and rounded prices come out, and every operator
correction is learned as a dictionary rule.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level so CLI errors come out readable
		// with ISO8601 timestamps instead of the production epoch encoding.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
