package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Treata11/MuVis-v2.1.1/logging"
)

var (
	logLevel string
	zlog     *logging.ZapLogger
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "muvis",
		Short:         "Spectral curve engine: octave ellipses, spiral, and Lissajous figures",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zlog = logging.NewZapLogger()
			zlog.SetLevel(logging.ParseLevel(logLevel))
			logging.SetGlobalLogger(zlog)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"minimum log level (debug, info, warn, error)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newRenderCommand())
	return root
}

func main() {
	err := newRootCommand().Execute()
	if zlog != nil {
		zlog.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "muvis:", err)
		os.Exit(1)
	}
}
