package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nbtranslate/internal/translate"
	"github.com/pdiddy/nbtranslate/pkg/types"
)

var translateCmd = &cobra.Command{
	Use:   "translate [root]",
	Short: "Translate every notebook under root",
	Long: `Translate scans root for notebooks, writes a translated sibling copy of each
one that does not have one yet, prints a status line per notebook and a final
summary, and writes the explanatory report file under root.

A notebook that cannot be read, parsed, or written is reported as failed and
the batch continues. A missing or unreadable root aborts the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := translateConfig(args)
		cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
		asJSON, _ := cmd.Flags().GetBool("json")

		table, err := phraseTable(cfg.PhrasesFile)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		result, err := translate.Run(cfg, translate.NewNotebookTranslator(table), w)
		if err != nil {
			return err
		}

		if asJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling result: %w", err)
			}
			fmt.Fprintln(w, string(data))
		}
		return nil
	},
}

func init() {
	translateCmd.Flags().String("report", types.DefaultReportFile, "name of the report file written under root")
	translateCmd.Flags().Bool("dry-run", false, "list what would be translated without writing files")
	translateCmd.Flags().Bool("json", false, "print the batch result as JSON after the summary")

	mustBind("report_file", translateCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(translateCmd)
}
