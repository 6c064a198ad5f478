package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nbtranslate/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "List the notebooks a translate run would consider",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := translateConfig(args)
		paths, err := scan.Scan(cfg.RootDir, cfg.ScanConfig)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
