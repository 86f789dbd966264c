package cmd

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the named pitches and colors",
	Long: `List the pitch and color names accepted by --pitch and --color, with
the values they resolve to. Pitches are multiples of the 0.5mm base pitch.

Examples:
  partsfactory tables
  partsfactory tables --config factory.yaml`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pitches := cfg.Pitches()
	fmt.Println("Pitches:")
	for _, name := range cfg.PitchNames() {
		fmt.Printf("  %-8s %g\n", name, pitches[name])
	}

	colors := cfg.Colors()
	names := lo.Keys(colors)
	sort.Strings(names)
	fmt.Println("\nColors:")
	for _, name := range names {
		fmt.Printf("  %-8s %s\n", name, colors[name])
	}

	if verbose {
		fmt.Printf("\nAuthor: %s\n", cfg.Author())
		fmt.Printf("Fritzing version: %s\n", cfg.FritzingVersion())
		fmt.Printf("Schematic pitch: %g\n", cfg.SchematicPitch())
	}
	return nil
}
