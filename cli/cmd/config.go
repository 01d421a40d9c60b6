package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/sentineltools/commentcode/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration for the scan directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(directory)
		if err != nil {
			return err
		}
		fmt.Println(repr.String(cfg, repr.Indent("  ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
