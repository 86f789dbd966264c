package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/request"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/generator"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/sink"
)

var (
	// Output flags, shared with batch
	outDir   string
	parallel bool
	dateFlag string
	dryRun   bool

	// Part flags
	partCode    string
	interactive bool
	flagReq     request.Request
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one header part",
	Long: `Generate the .fzp descriptor and the breadboard, schematic and PCB views
of one header part. Unset fields take their defaults (4x4 brown male header,
0.5mm pitch, through-hole circle pads, column pin order). A compact part code
is applied first; explicit flags override it.

Female headers have no schematic view; pass --views breadboard,pcb for them.

Examples:
  partsfactory generate --code "male-header 1x40 0.1in red"
  partsfactory generate --kind female-header --rows 1 --columns 8 --pitch 0.1in --views breadboard,pcb
  partsfactory generate --code "male-header 2x5 0.1in smd rectangle" --out parts/
  partsfactory generate --interactive`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addOutputFlags(generateCmd)

	generateCmd.Flags().StringVar(&partCode, "code", "",
		`compact part code, e.g. "male-header 2x10 0.1in tht oblong row red v2"`)
	generateCmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"prompt for every field")

	generateCmd.Flags().StringVar(&flagReq.Kind, "kind", "", "male-header or female-header")
	generateCmd.Flags().Var(optionalInt{&flagReq.Rows}, "rows", "pins per column")
	generateCmd.Flags().Var(optionalInt{&flagReq.Columns}, "columns", "number of columns")
	generateCmd.Flags().StringVar(&flagReq.Pitch, "pitch", "",
		"pin pitch: a table name (0.1in, 2mm...) or a multiple of 0.5mm")
	generateCmd.Flags().StringVar(&flagReq.Mount, "mount", "", "tht or smd")
	generateCmd.Flags().StringVar(&flagReq.Pad, "pad", "", "circle, oblong (tht) or rectangle (smd)")
	generateCmd.Flags().StringVar(&flagReq.Order, "order", "", "pin numbering order: row or column")
	generateCmd.Flags().StringVar(&flagReq.Color, "color", "", "color name or #rrggbb")
	generateCmd.Flags().Var(optionalInt{&flagReq.Version}, "part-version", "part version number")
	generateCmd.Flags().StringSliceVar(&flagReq.Views, "views", nil,
		"views to generate (breadboard, schematic, pcb); default all")
	generateCmd.Flags().StringVar(&flagReq.UUID, "uuid", "",
		"derive the module id from this UUID instead of a random one")
}

// optionalInt is an int flag that leaves its target nil until it is given.
type optionalInt struct{ dst **int }

func (o optionalInt) String() string {
	if o.dst == nil || *o.dst == nil {
		return ""
	}
	return strconv.Itoa(**o.dst)
}

func (o optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*o.dst = &n
	return nil
}

func (o optionalInt) Type() string { return "int" }

func addOutputFlags(c *cobra.Command) {
	c.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	c.Flags().BoolVarP(&parallel, "parallel", "p", false, "build the views concurrently")
	c.Flags().StringVar(&dateFlag, "date", "", "descriptor date (YYYY-MM-DD); default today")
	c.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "validate and list the files without writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator(parallel, dateFlag)
	if err != nil {
		return err
	}

	fields := flagReq
	fields.Code = partCode
	req, err := request.Default().Merge(fields)
	if err != nil {
		return err
	}

	if interactive {
		if req, err = promptRequest(req, gen.Config()); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Printf("Generating %s\n", describe(req))
	}

	out, err := produce(cmd.Context(), gen, req)
	if err != nil {
		return err
	}
	printOutput(out)
	return nil
}

// produce generates req into the output directory, or only builds it for a
// dry run.
func produce(ctx context.Context, gen *generator.Generator, req request.Request) (*generator.Output, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var s sink.Sink = sink.NewDir(outDir)
	if dryRun {
		s = sink.NewMemory()
	}
	return gen.GenerateRequest(ctx, req, s)
}

func printOutput(out *generator.Output) {
	verb := "Generated"
	if dryRun {
		verb = "Would generate"
	}
	fmt.Printf("%s %s\n", verb, out.Descriptor.ModuleID)
	fmt.Printf("  Title: %s\n", out.Descriptor.Title)
	for _, p := range out.Paths() {
		fmt.Printf("  %s\n", p)
	}
}

func describe(r request.Request) string {
	return fmt.Sprintf("%s %dx%d pitch %s %s %s pads, %s order, color %s, v%d",
		r.Kind, lo.FromPtr(r.Rows), lo.FromPtr(r.Columns), r.Pitch, r.Mount, r.Pad, r.Order, r.Color,
		lo.FromPtr(r.Version))
}
