package main

import (
	"fmt"
	"os"

	"icalls/internal/lsp"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	stdio   bool
	logFile string
	verbose int
)

var rootCmd = &cobra.Command{
	Use:           "icalls",
	Short:         "Language server for iCalendar files",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var path *string
		if logFile != "" {
			path = &logFile
		}
		commonlog.Configure(verbose, path)

		if !stdio {
			return fmt.Errorf("no connection mode given, e.g. --stdio")
		}
		return lsp.NewServer().RunStdio()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&stdio, "stdio", false, "connect over stdin/stdout")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.Flags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
