package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "Print the phrase table in application order",
	Long: `Phrases prints the effective substitution table, either the built-in one or
the file given with --phrases. With --yaml the table is written in the phrase
file format, which is a convenient starting point for a custom table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := phraseTable(viper.GetString("phrases_file"))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			return table.WriteYAML(w)
		}
		for _, p := range table.Phrases() {
			fmt.Fprintf(w, "%s → %s\n", p.Source, p.Target)
		}
		return nil
	},
}

func init() {
	phrasesCmd.Flags().Bool("yaml", false, "print the table as a YAML phrase file")

	rootCmd.AddCommand(phrasesCmd)
}
