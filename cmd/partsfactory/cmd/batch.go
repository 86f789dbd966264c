package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/request"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Generate every part listed in a batch file",
	Long: `Generate every part of a batch file. YAML files (.yaml, .yml) hold a
"defaults" request and a "parts" list; S-expression files (.fzreq, .sexp)
hold one (defaults ...) form and any number of (part ...) forms. Each part
starts from the built-in defaults, then the batch defaults, then its own
fields.

Examples:
  partsfactory batch headers.yaml --out parts/
  partsfactory batch headers.fzreq --parallel --date 2024-03-05`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addOutputFlags(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	reqs, err := request.LoadFile(filename)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		return fmt.Errorf("%s: no parts", filename)
	}

	if verbose {
		fmt.Printf("Loaded %d part(s) from %s\n\n", len(reqs), filename)
	}

	gen, err := newGenerator(parallel, dateFlag)
	if err != nil {
		return err
	}

	for i, req := range reqs {
		out, err := produce(cmd.Context(), gen, req)
		if err != nil {
			return fmt.Errorf("part %d (%s): %w", i+1, describe(req), err)
		}
		printOutput(out)
	}

	fmt.Printf("\nGenerated %d part(s)\n", len(reqs))
	return nil
}
