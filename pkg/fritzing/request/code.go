package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
)

// CodeLexer tokenizes compact part codes such as
//
//	male-header 2x10 0.1in tht oblong row red v2
//
// The kind and the rows x columns grid come first; the remaining fields may
// appear in any order and each at most once.
var CodeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s,]+`},

	// 4x4 grid, rows x columns
	{Name: "Grid", Pattern: `[0-9]+x[0-9]+`},

	// pitch with a unit (0.5mm, 0.1in) or a raw base-pitch multiple
	{Name: "Pitch", Pattern: `[0-9]*\.?[0-9]+(mm|in)`},
	{Name: "Number", Pattern: `[0-9]*\.?[0-9]+`},

	{Name: "Version", Pattern: `v[0-9]+`},
	{Name: "Color", Pattern: `#[0-9a-f]{6}`},

	// Identifiers (kinds, keywords, color names)
	{Name: "Ident", Pattern: `[a-z][a-z0-9_-]*`},
})

// partCode is the grammar of a compact part code.
type partCode struct {
	Kind    string        `@( "male-header" | "female-header" )`
	Grid    string        `@Grid`
	Options []*codeOption `@@*`
}

type codeOption struct {
	Pitch   *string `  @( Pitch | Number )`
	Mount   *string `| @( "tht" | "smd" )`
	Pad     *string `| @( "circle" | "oblong" | "rectangle" )`
	Order   *string `| @( "row" | "column" )`
	Version *string `| @Version`
	Color   *string `| @( Color | Ident )`
}

var codeParser = participle.MustBuild[partCode](
	participle.Lexer(CodeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseCode parses a compact part code into a request. Fields the code
// does not name are left unset.
func ParseCode(code string) (Request, error) {
	ast, err := codeParser.ParseString("", strings.ToLower(strings.TrimSpace(code)))
	if err != nil {
		return Request{}, fmt.Errorf("%w: part code %q: %v", part.ErrInvalidSpec, code, err)
	}

	r := Request{Kind: ast.Kind}

	rows, columns, _ := strings.Cut(ast.Grid, "x")
	nrows, err := strconv.Atoi(rows)
	if err != nil {
		return Request{}, fmt.Errorf("%w: part code %q: rows: %v", part.ErrInvalidSpec, code, err)
	}
	ncolumns, err := strconv.Atoi(columns)
	if err != nil {
		return Request{}, fmt.Errorf("%w: part code %q: columns: %v", part.ErrInvalidSpec, code, err)
	}
	r.Rows, r.Columns = &nrows, &ncolumns

	seen := map[string]bool{}
	once := func(field string) error {
		if seen[field] {
			return fmt.Errorf("%w: part code %q: %s given twice", part.ErrInvalidSpec, code, field)
		}
		seen[field] = true
		return nil
	}

	for _, opt := range ast.Options {
		var field string
		switch {
		case opt.Pitch != nil:
			field, r.Pitch = "pitch", *opt.Pitch
		case opt.Mount != nil:
			field, r.Mount = "mount", *opt.Mount
		case opt.Pad != nil:
			field, r.Pad = "pad", *opt.Pad
		case opt.Order != nil:
			field, r.Order = "order", *opt.Order
		case opt.Version != nil:
			field = "version"
			n, err := strconv.Atoi(strings.TrimPrefix(*opt.Version, "v"))
			if err != nil {
				return Request{}, fmt.Errorf("%w: part code %q: version: %v", part.ErrInvalidSpec, code, err)
			}
			r.Version = &n
		case opt.Color != nil:
			field, r.Color = "color", *opt.Color
		}
		if err := once(field); err != nil {
			return Request{}, err
		}
	}

	return r, nil
}

// Code formats a resolved spec back into a compact part code. The pitch
// is written as a raw base-pitch multiple and the color as #rrggbb.
func Code(s part.Spec) string {
	return fmt.Sprintf("%s %dx%d %s %s %s %s %s v%d",
		s.Kind, s.Rows, s.Columns, strconv.FormatFloat(s.Pitch, 'f', -1, 64),
		s.Mount, s.Pad, s.Order, s.Color, s.Version)
}
