// Package generator produces the complete file set of a header part: the
// .fzp descriptor plus one SVG per view, committed to a sink in one step.
package generator

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/fzp"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/request"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/svg"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/view"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/identity"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/sink"
)

// Options configures a Generator. Zero fields take defaults.
type Options struct {
	// Config holds the pitch and color tables. Defaults to part.DefaultConfig.
	Config *part.Config

	// Views to generate when a call does not name any. Defaults to all.
	Views []part.View

	// Parallel builds the view documents concurrently.
	Parallel bool

	// IDs supplies the unique module id suffix. Defaults to identity.Random.
	IDs identity.Provider

	// Clock supplies the descriptor date. Defaults to time.Now.
	Clock func() time.Time

	// Logger receives progress messages. Defaults to discarding them.
	Logger *log.Logger

	// Verbose adds full request and spec dumps to the log.
	Verbose bool
}

// Generator turns part specs into file sets.
type Generator struct {
	cfg      part.Config
	views    []part.View
	parallel bool
	ids      identity.Provider
	clock    func() time.Time
	log      *log.Logger
	verbose  bool
	asm      *view.Assembler
}

// New creates a generator.
func New(opts Options) *Generator {
	g := &Generator{
		views:    opts.Views,
		parallel: opts.Parallel,
		ids:      opts.IDs,
		clock:    opts.Clock,
		log:      opts.Logger,
		verbose:  opts.Verbose,
	}
	if opts.Config != nil {
		g.cfg = *opts.Config
	} else {
		g.cfg = part.DefaultConfig()
	}
	if len(g.views) == 0 {
		g.views = part.AllViews
	}
	if g.ids == nil {
		g.ids = identity.Random{}
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	if g.log == nil {
		g.log = log.New(io.Discard, "", 0)
	}
	g.asm = view.NewAssembler(g.cfg)
	return g
}

// Config returns the configuration the generator resolves requests with.
func (g *Generator) Config() part.Config { return g.cfg }

// Output is one generated part.
type Output struct {
	Descriptor *fzp.Descriptor
	// Files holds the descriptor first, then one SVG per view in view order.
	Files []sink.File
}

// Paths returns the sink paths of every file.
func (o *Output) Paths() []string {
	return lo.Map(o.Files, func(f sink.File, _ int) string { return f.Path })
}

// Build generates every document for spec without storing anything. A nil
// views slice selects the generator's default views.
func (g *Generator) Build(ctx context.Context, spec part.Spec, views []part.View) (*Output, error) {
	return g.build(ctx, spec, views, g.ids)
}

func (g *Generator) build(ctx context.Context, spec part.Spec, views []part.View, ids identity.Provider) (*Output, error) {
	if len(views) == 0 {
		views = g.views
	}

	// reject the whole part before doing any work
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	for _, v := range views {
		if err := spec.Supports(v); err != nil {
			return nil, err
		}
	}
	spec = spec.Normalized()

	if g.verbose {
		g.log.Printf("spec: %s", spew.Sdump(spec))
	}

	id, err := ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to create part id: %w", err)
	}

	desc, err := fzp.New(g.cfg, spec, id, g.clock(), views)
	if err != nil {
		return nil, err
	}
	g.log.Printf("building %s (%d pins, %d views)", desc.ModuleID, spec.Pins(), len(views))

	docs, err := g.buildViews(ctx, spec, views)
	if err != nil {
		return nil, err
	}

	out := &Output{Descriptor: desc}
	base := fzp.FileBase(desc.ModuleID)
	out.Files = append(out.Files, sink.File{Path: base + ".fzp", Lines: desc.Lines()})

	for i, v := range views {
		if err := checkConnectors(desc, v, view.ConnectorIDs(docs[i])); err != nil {
			return nil, err
		}
		out.Files = append(out.Files, sink.File{
			Path:  "svg/" + fzp.ImagePath(base, v),
			Lines: docs[i].Lines(),
		})
	}

	return out, nil
}

// buildViews returns one document per view, in the order of views, however
// they were scheduled.
func (g *Generator) buildViews(ctx context.Context, spec part.Spec, views []part.View) ([]*svg.Document, error) {
	docs := make([]*svg.Document, len(views))

	if !g.parallel {
		for i, v := range views {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			d, err := g.buildView(spec, v)
			if err != nil {
				return nil, err
			}
			docs[i] = d
		}
		return docs, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	for i, v := range views {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := g.buildView(spec, v)
			if err != nil {
				return err
			}
			docs[i] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (g *Generator) buildView(spec part.Spec, v part.View) (*svg.Document, error) {
	doc, err := g.asm.Build(spec, v)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s view: %w", v, err)
	}
	g.log.Printf("  %s view: %d elements", v, len(doc.Elements()))
	return doc, nil
}

// checkConnectors verifies the descriptor declares exactly the connector
// elements the view document contains.
func checkConnectors(desc *fzp.Descriptor, v part.View, ids []string) error {
	declared := desc.SVGIDs(v)
	missing, extra := lo.Difference(lo.Uniq(declared), lo.Uniq(ids))
	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("descriptor and %s view disagree: declared but not drawn %v, drawn but not declared %v",
			v, missing, extra)
	}
	return nil
}

// Generate builds every document for spec and commits them to s.
func (g *Generator) Generate(ctx context.Context, spec part.Spec, views []part.View, s sink.Sink) (*Output, error) {
	return g.generate(ctx, spec, views, g.ids, s)
}

func (g *Generator) generate(ctx context.Context, spec part.Spec, views []part.View, ids identity.Provider, s sink.Sink) (*Output, error) {
	out, err := g.build(ctx, spec, views, ids)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.Commit(out.Files); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", out.Descriptor.ModuleID, err)
	}
	g.log.Printf("wrote %d files for %s", len(out.Files), out.Descriptor.ModuleID)
	return out, nil
}

// GenerateRequest resolves req against the generator's configuration and
// generates it. A UUID in the request replaces the generator's identity
// provider for this part.
func (g *Generator) GenerateRequest(ctx context.Context, req request.Request, s sink.Sink) (*Output, error) {
	if g.verbose {
		g.log.Printf("request: %s", spew.Sdump(req))
	}

	spec, err := req.Resolve(g.cfg)
	if err != nil {
		return nil, err
	}

	var views []part.View
	if len(req.Views) > 0 {
		if views, err = req.ResolveViews(); err != nil {
			return nil, err
		}
	}

	ids := g.ids
	if req.UUID != "" {
		if ids, err = identity.FromUUID(req.UUID); err != nil {
			return nil, fmt.Errorf("%w: %w", part.ErrInvalidSpec, err)
		}
	}

	return g.generate(ctx, spec, views, ids, s)
}
