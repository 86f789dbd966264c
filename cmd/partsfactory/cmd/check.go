package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/fzp"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/request"
)

var checkCmd = &cobra.Command{
	Use:   "check <code>",
	Short: "Validate a compact part code without writing anything",
	Long: `Parse a compact part code, resolve it against the pitch and color tables
and report the resulting part and which views can be generated for it.

Examples:
  partsfactory check "male-header 2x10 0.1in"
  partsfactory check "female-header 1x8 smd rectangle"`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req, err := request.Default().Merge(request.Request{Code: args[0]})
	if err != nil {
		return err
	}
	spec, err := req.Resolve(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Part: %s\n", fzp.Title(spec))
	fmt.Printf("  Code: %s\n", request.Code(spec))
	fmt.Printf("  Pins: %d\n", spec.Pins())
	fmt.Println("  Views:")
	for _, v := range part.AllViews {
		if err := spec.Supports(v); err != nil {
			fmt.Printf("    %-10s unsupported (%v)\n", v, err)
			continue
		}
		fmt.Printf("    %-10s ok\n", v)
	}
	return nil
}
