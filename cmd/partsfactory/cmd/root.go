package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/generator"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "partsfactory",
	Short: "Fritzing pin header part generator",
	Long: `Generate Fritzing parts for male and female pin headers: the .fzp part
descriptor plus breadboard, schematic and PCB SVG views, for any grid of
rows and columns, pitch, pad shape and pin order.

Examples:
  partsfactory generate --code "male-header 2x10 0.1in"   # 20-pin dual row header
  partsfactory generate --interactive                     # Answer prompts instead
  partsfactory batch parts.yaml --out parts/              # Generate a batch file
  partsfactory tables                                     # List pitches and colors`,
	Version:      "0.1.0",
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML file overriding the pitch and color tables, author and reference files")
}

func loadConfig() (part.Config, error) {
	if configPath == "" {
		return part.DefaultConfig(), nil
	}
	cfg, err := part.LoadConfig(configPath)
	if err != nil {
		return part.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func logger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "partsfactory: ", 0)
}

// newGenerator builds a generator from the shared output flags.
func newGenerator(parallel bool, date string) (*generator.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	clock := time.Now
	if date != "" {
		d, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return nil, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", date, err)
		}
		clock = func() time.Time { return d }
	}

	return generator.New(generator.Options{
		Config:   &cfg,
		Parallel: parallel,
		Clock:    clock,
		Logger:   logger(),
		Verbose:  verbose,
	}), nil
}
