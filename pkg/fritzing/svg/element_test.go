package svg

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
)

func TestElementLines(t *testing.T) {
	tests := []struct {
		name string
		elem *Element
		want []string
	}{
		{
			name: "self closing",
			elem: NewElement("rect").Set("id", "connector0pin").Set("x", geom.Coord(8)),
			want: []string{
				"    <rect",
				`      id="connector0pin"`,
				`      x="8"`,
				"    />",
			},
		},
		{
			name: "text content",
			elem: NewElement("text").Set("id", "pintext3").Set("y", geom.Coord(6.9)).WithText("3"),
			want: []string{
				"    <text",
				`      id="pintext3"`,
				`      y="6.9">3</text>`,
			},
		},
		{
			name: "custom indent",
			elem: NewElement("circle").WithIndent(5).Set("r", geom.Coord(4.2)),
			want: []string{
				"     <circle",
				`       r="4.2"`,
				"     />",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.elem.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestElementID(t *testing.T) {
	e := NewElement("path").Set("id", "outline7").Set("fill", "#404040")
	if got := e.ID(); got != "outline7" {
		t.Errorf("ID() = %q, want outline7", got)
	}
	if _, ok := e.Get("stroke"); ok {
		t.Errorf("Get(stroke) found an attribute that was never set")
	}
}

func TestPathString(t *testing.T) {
	p := NewPath().
		Cmd("M", geom.Coord(0), geom.Coord(12)).
		Cmd("l", geom.Coord(3.83), geom.Coord(-3.83)).
		Cmd("h", geom.Coord(12.1)).
		Cmd("c", geom.Coord(0), geom.Coord(2.7), geom.Coord(0), geom.Coord(7.2), geom.Coord(0), geom.Coord(10)).
		Close()

	want := "M 0,12 l 3.83,-3.83 h 12.1 c 0,2.7 0,7.2 0,10 z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDocumentIsWellFormed(t *testing.T) {
	doc := NewDocument(0.0792, 0.0792, "svg.breadboard.male_1_pin-0.1in-cons-lines_breadboard.svg")
	outer := doc.AddGroup("copper1")
	inner := outer.Nest("copper0")
	inner.Add(
		NewElement("path").Set("id", "outline0").Set("d", NewPath().Cmd("M", geom.Coord(0), geom.Coord(3.83)).Close()),
		NewElement("text").Set("id", "pintext0").WithText("0"),
	)

	dec := xml.NewDecoder(strings.NewReader(strings.Join(doc.Lines(), "\n")))
	var starts []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("document is not well formed: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			starts = append(starts, se.Name.Local)
		}
	}

	want := []string{"svg", "defs", "desc", "referenceFile", "g", "g", "path", "text"}
	if diff := cmp.Diff(want, starts); diff != "" {
		t.Errorf("element order mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentEnvelope(t *testing.T) {
	doc := NewDocument(0.0792, 0.1584, "ref.svg")
	lines := doc.Lines()

	for _, want := range []string{
		`  height="0.158400in"`,
		`  width="0.079200in"`,
		`  viewBox="0 0 79.200000 158.400000"`,
		"      <referenceFile>ref.svg</referenceFile>",
	} {
		found := false
		for _, l := range lines {
			if l == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("envelope missing line %q", want)
		}
	}
}

func TestViewBox(t *testing.T) {
	doc := NewDocument(0.0792, 0.1584, "ref.svg")
	vb := doc.ViewBox()

	if vb.LLx != 0 || vb.LLy != 0 {
		t.Errorf("ViewBox origin = %v,%v, want 0,0", vb.LLx, vb.LLy)
	}
	if vb.Dx() != 79.2 || vb.Dy() != 158.4 {
		t.Errorf("ViewBox size = %v x %v, want 79.2 x 158.4", vb.Dx(), vb.Dy())
	}
}

func TestFindByID(t *testing.T) {
	doc := NewDocument(1, 1, "ref.svg")
	doc.AddGroup("breadboard").Add(NewElement("rect").Set("id", "connector2pin"))

	if _, ok := doc.FindByID("connector2pin"); !ok {
		t.Errorf("FindByID(connector2pin) not found")
	}
	if _, ok := doc.FindByID("connector3pin"); ok {
		t.Errorf("FindByID(connector3pin) unexpectedly found")
	}
}
