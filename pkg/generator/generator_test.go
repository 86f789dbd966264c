package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/fzp"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/request"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/identity"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/sink"
)

var fixedDate = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

func newTestGenerator(parallel bool) *Generator {
	return New(Options{
		Parallel: parallel,
		IDs:      identity.Fixed("0123abcd"),
		Clock:    func() time.Time { return fixedDate },
	})
}

func header() part.Spec {
	return part.Spec{
		Kind:    part.MaleHeader,
		Rows:    2,
		Columns: 3,
		Pitch:   5.08,
		Mount:   part.THT,
		Pad:     part.Oblong,
		Order:   part.ByRow,
		Color:   "#8c0000",
		Version: 1,
	}
}

func contents(t *testing.T, m *sink.Memory) map[string]string {
	t.Helper()
	files := map[string]string{}
	for _, p := range m.Paths() {
		files[p], _ = m.Get(p)
	}
	return files
}

func TestGenerateFileNames(t *testing.T) {
	g := newTestGenerator(false)
	m := sink.NewMemory()

	out, err := g.Generate(context.Background(), header(), nil, m)
	if err != nil {
		t.Fatal(err)
	}

	base := fzp.FileBase(fzp.ModuleID(header(), "0123abcd"))
	want := []string{
		base + ".fzp",
		"svg/breadboard/" + base + "_breadboard.svg",
		"svg/schematic/" + base + "_schematic.svg",
		"svg/pcb/" + base + "_pcb.svg",
	}
	if diff := cmp.Diff(want, out.Paths()); diff != "" {
		t.Errorf("output paths (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(len(want), len(m.Paths())); diff != "" {
		t.Errorf("committed file count (-want +got):\n%s", diff)
	}

	desc, _ := m.Get(base + ".fzp")
	if !strings.Contains(desc, "<date>Tue Mar 05 2024</date>") {
		t.Errorf("descriptor does not carry the injected date:\n%s", desc)
	}
	for _, v := range part.AllViews {
		if !strings.Contains(desc, `image="`+fzp.ImagePath(base, v)+`"`) {
			t.Errorf("descriptor does not reference the %s image", v)
		}
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	specs := map[string]part.Spec{
		"tht oblong": header(),
		"smd": {
			Kind: part.MaleHeader, Rows: 1, Columns: 8, Pitch: 5.08,
			Mount: part.SMD, Pad: part.Rectangle, Order: part.ByRow, Color: "#404040", Version: 2,
		},
		"female": {
			Kind: part.FemaleHeader, Rows: 3, Columns: 2, Pitch: 1,
			Mount: part.THT, Pad: part.Circle, Order: part.ByColumn, Color: "#404040", Version: 1,
		},
	}
	views := map[string][]part.View{"female": {part.Breadboard, part.PCB}}

	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			first, second := sink.NewMemory(), sink.NewMemory()
			if _, err := newTestGenerator(false).Generate(context.Background(), spec, views[name], first); err != nil {
				t.Fatal(err)
			}
			if _, err := newTestGenerator(false).Generate(context.Background(), spec, views[name], second); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(contents(t, first), contents(t, second)); diff != "" {
				t.Errorf("second run differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, rows := range []int{1, 4, 7} {
		spec := header()
		spec.Rows = rows

		seq, par := sink.NewMemory(), sink.NewMemory()
		if _, err := newTestGenerator(false).Generate(context.Background(), spec, nil, seq); err != nil {
			t.Fatal(err)
		}
		if _, err := newTestGenerator(true).Generate(context.Background(), spec, nil, par); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(contents(t, seq), contents(t, par)); diff != "" {
			t.Errorf("rows=%d: parallel output differs (-sequential +parallel):\n%s", rows, diff)
		}
	}
}

func TestGenerateRejectsBeforeWriting(t *testing.T) {
	smdCircle := header()
	smdCircle.Mount = part.SMD
	smdCircle.Pad = part.Circle

	female := header()
	female.Kind = part.FemaleHeader

	tests := []struct {
		name    string
		spec    part.Spec
		views   []part.View
		wantErr error
	}{
		{"smd circle", smdCircle, nil, part.ErrInvalidSpec},
		{"female schematic", female, nil, part.ErrUnimplemented},
		{"female schematic only", female, []part.View{part.Schematic}, part.ErrUnimplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, parallel := range []bool{false, true} {
				m := sink.NewMemory()
				_, err := newTestGenerator(parallel).Generate(context.Background(), tt.spec, tt.views, m)
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parallel=%v: error = %v, want %v", parallel, err, tt.wantErr)
				}
				if paths := m.Paths(); len(paths) != 0 {
					t.Errorf("parallel=%v: files written after failure: %v", parallel, paths)
				}
			}
		})
	}
}

func TestGenerateSinkFailure(t *testing.T) {
	m := sink.NewMemory()
	m.Fail = errors.New("disk full")

	_, err := newTestGenerator(false).Generate(context.Background(), header(), nil, m)
	if !errors.Is(err, sink.ErrSink) {
		t.Fatalf("error = %v, want sink.ErrSink", err)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallel := range []bool{false, true} {
		m := sink.NewMemory()
		_, err := newTestGenerator(parallel).Generate(ctx, header(), nil, m)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("parallel=%v: error = %v, want context.Canceled", parallel, err)
		}
		if len(m.Paths()) != 0 {
			t.Errorf("parallel=%v: files written after cancel", parallel)
		}
	}
}

func TestGenerateRequest(t *testing.T) {
	const id = "123e4567-e89b-12d3-a456-426614174000"
	p, err := identity.FromUUID(id)
	if err != nil {
		t.Fatal(err)
	}
	hashed, _ := p.NewID()

	req, err := request.Default().Merge(request.Request{
		Code:  "female-header 1x6 0.1in",
		UUID:  id,
		Views: []string{"breadboard,pcb"},
	})
	if err != nil {
		t.Fatal(err)
	}

	m := sink.NewMemory()
	out, err := newTestGenerator(false).GenerateRequest(context.Background(), req, m)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.Descriptor.ModuleID, "_"+hashed+"_") {
		t.Errorf("module id %q does not carry the hashed uuid %q", out.Descriptor.ModuleID, hashed)
	}
	if got := len(m.Paths()); got != 3 {
		t.Errorf("wrote %d files, want descriptor plus 2 views", got)
	}

	req.UUID = "not-a-uuid"
	if _, err := newTestGenerator(false).GenerateRequest(context.Background(), req, sink.NewMemory()); !errors.Is(err, part.ErrInvalidSpec) {
		t.Errorf("bad uuid error = %v, want ErrInvalidSpec", err)
	}
}

func TestCheckConnectors(t *testing.T) {
	desc, err := fzp.New(part.DefaultConfig(), header(), "x", fixedDate, []part.View{part.Breadboard})
	if err != nil {
		t.Fatal(err)
	}
	ids := desc.SVGIDs(part.Breadboard)

	if err := checkConnectors(desc, part.Breadboard, ids); err != nil {
		t.Errorf("matching ids rejected: %v", err)
	}
	if err := checkConnectors(desc, part.Breadboard, ids[1:]); err == nil {
		t.Error("missing connector not reported")
	}
	if err := checkConnectors(desc, part.Breadboard, append(ids, "connector99pin")); err == nil {
		t.Error("extra connector not reported")
	}
}

func TestDefaultViews(t *testing.T) {
	g := New(Options{
		Views: []part.View{part.PCB},
		IDs:   identity.Fixed("0123abcd"),
		Clock: func() time.Time { return fixedDate },
	})

	out, err := g.Build(context.Background(), header(), nil)
	if err != nil {
		t.Fatal(err)
	}
	base := fzp.FileBase(out.Descriptor.ModuleID)
	want := []string{base + ".fzp", "svg/pcb/" + base + "_pcb.svg"}
	if diff := cmp.Diff(want, out.Paths()); diff != "" {
		t.Errorf("output paths (-want +got):\n%s", diff)
	}

	out, err = g.Build(context.Background(), header(), []part.View{part.Breadboard})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(out.Files); got != 2 {
		t.Errorf("explicit views: got %d files, want 2", got)
	}
}
