package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "commentcode",
		Short:        "commentcode",
		SilenceUsage: true,
		Long:         `CLI tool for detecting commented-out code in Java sources.`,
	}

	directory    string
	debug        bool
	storeBackend string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for *.java files")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "findings store backend (postgres, mssql, or none); overrides commentcode.yaml's store.backend when set")
	return rootCmd.Execute()
}

func logger() logrus.FieldLogger {
	l := logrus.StandardLogger()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func init() {
}
