// Package fzp builds the Fritzing part descriptor (.fzp) of a header part.
package fzp

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/shapes"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/identity"
)

// DateLayout is the format of the <date> element.
const DateLayout = "Mon Jan 02 2006"

const (
	family = "Generic header"
	label  = "J"
)

// Connector is one pin declaration, with the svg ids it binds to in each
// view. Empty ids are not declared.
type Connector struct {
	Number            int
	Breadboard        string
	SchematicPin      string
	SchematicTerminal string
	Copper0           string
	Copper1           string
}

// ID is the connector id used in the descriptor.
func (c Connector) ID() string { return fmt.Sprintf("connector%d", c.Number) }

// Name is the human-readable pin name. Pins are numbered from 1.
func (c Connector) Name() string { return fmt.Sprintf("Pin %d", c.Number+1) }

// Descriptor is the complete part descriptor.
type Descriptor struct {
	ModuleID        string
	FritzingVersion string
	Author          string
	Title           string
	Date            time.Time
	Spec            part.Spec
	Views           []part.View
	Images          map[part.View]string
	Connectors      []Connector
}

// New builds the descriptor for spec. id is the unique suffix from an
// identity provider; views lists the views the part ships with.
func New(cfg part.Config, spec part.Spec, id string, date time.Time, views []part.View) (*Descriptor, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	for _, v := range views {
		if err := spec.Supports(v); err != nil {
			return nil, err
		}
	}
	spec = spec.Normalized()

	d := &Descriptor{
		ModuleID:        ModuleID(spec, id),
		FritzingVersion: cfg.FritzingVersion(),
		Author:          cfg.Author(),
		Title:           Title(spec),
		Date:            date,
		Spec:            spec,
		Views:           views,
		Images:          make(map[part.View]string, len(views)),
	}

	base := FileBase(d.ModuleID)
	for _, v := range views {
		d.Images[v] = ImagePath(base, v)
	}

	for n := 0; n < spec.Pins(); n++ {
		d.Connectors = append(d.Connectors, connector(n, spec.Mount, views))
	}

	return d, nil
}

func connector(n int, mount part.Mount, views []part.View) Connector {
	c := Connector{Number: n}
	for _, v := range views {
		switch v {
		case part.Breadboard:
			c.Breadboard = shapes.ConnectorID(n, "pin")
		case part.Schematic:
			c.SchematicPin = shapes.ConnectorID(n, "pin")
			c.SchematicTerminal = shapes.ConnectorID(n, "terminal")
		case part.PCB:
			if mount == part.SMD {
				c.Copper1 = shapes.ConnectorID(n, "pad")
				continue
			}
			c.Copper0 = shapes.ConnectorID(n, "pin")
			c.Copper1 = shapes.ConnectorID(n, "pin")
		}
	}
	return c
}

// ModuleID derives the module id of spec. The result is folded to Latin-1.
func ModuleID(spec part.Spec, id string) string {
	s := fmt.Sprintf("Generic-%s-%dpins-%dcolumns-%s-pitch-%s-pinorder-%s-%s-%s_%s_%d",
		spec.Kind, spec.Rows, spec.Columns, formatPitch(spec.Pitch),
		spec.Mount, spec.Order, spec.Pad, spec.Color, id, spec.Version)
	return identity.Latin1(s)
}

// Title is the human-readable part title.
func Title(spec part.Spec) string {
	name := "Generic male header"
	if spec.Kind == part.FemaleHeader {
		name = "Generic female header"
	}
	if spec.Mount == part.SMD {
		name += " SMD"
	}
	return identity.Latin1(fmt.Sprintf("%s - %d pins %d columns %s pitch %s pin order %s %s %s",
		name, spec.Rows, spec.Columns, formatPitch(spec.Pitch),
		spec.Mount, spec.Order, spec.Pad, spec.Color))
}

func formatPitch(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileBase turns a module id into a file name stem.
func FileBase(moduleID string) string {
	return unsafeName.ReplaceAllString(moduleID, "_")
}

// ImagePath is the image of view relative to Fritzing's svg directory.
func ImagePath(base string, view part.View) string {
	return fmt.Sprintf("%s/%s_%s.svg", view, base, view)
}

// Lines renders the descriptor.
func (d *Descriptor) Lines() []string {
	s := d.Spec
	form, pkg := "(male)", "THT"
	if s.Kind == part.FemaleHeader {
		form = "(female)"
	}
	if s.Mount == part.SMD {
		pkg = "SMD"
	}

	lines := []string{
		"<?xml version='1.0' encoding='UTF-8'?>",
		fmt.Sprintf(`<module moduleId="%s" fritzingVersion="%s">`, esc(d.ModuleID), esc(d.FritzingVersion)),
		fmt.Sprintf("  <version>%d</version>", s.Version),
		fmt.Sprintf("  <author>%s</author>", esc(d.Author)),
		fmt.Sprintf("  <title>%s</title>", esc(d.Title)),
		fmt.Sprintf("  <label>%s</label>", label),
		fmt.Sprintf("  <date>%s</date>", d.Date.Format(DateLayout)),
		"  <tags/>",
		"  <properties>",
	}

	props := []struct{ name, value string }{
		{"family", family},
		{"PartType", string(s.Kind)},
		{"Rows", strconv.Itoa(s.Rows)},
		{"Columns", strconv.Itoa(s.Columns)},
		{"Pitch", fmt.Sprintf("%f", s.Pitch)},
		{"Pcbtype", string(s.Mount)},
		{"Pinorder", string(s.Order)},
		{"Padtype", string(s.Pad)},
		{"color", s.Color},
		{"Form", form},
		{"version", strconv.Itoa(s.Version)},
		{"package", pkg},
		{"mn", ""},
		{"layer", ""},
		{"part number", ""},
		{"mpn", ""},
		{"variant", "variant 1"},
	}
	for _, p := range props {
		lines = append(lines, fmt.Sprintf(`    <property name="%s">%s</property>`, p.name, esc(p.value)))
	}
	lines = append(lines,
		"  </properties>",
		fmt.Sprintf("  <description>%s</description>", esc(d.Title)),
		"  <views>",
	)

	if img, ok := d.Images[part.Breadboard]; ok {
		lines = append(lines, viewLines("iconView", img, "icon")...)
		lines = append(lines, viewLines("breadboardView", img, "breadboard")...)
	}
	if img, ok := d.Images[part.Schematic]; ok {
		lines = append(lines, viewLines("schematicView", img, "schematic")...)
	}
	if img, ok := d.Images[part.PCB]; ok {
		layers := []string{"silkscreen", "copper0", "copper1"}
		if s.Mount == part.SMD {
			layers = []string{"silkscreen", "copper1"}
		}
		lines = append(lines, viewLines("pcbView", img, layers...)...)
	}

	lines = append(lines, "  </views>", "  <connectors>")
	for _, c := range d.Connectors {
		lines = append(lines, c.lines()...)
	}
	return append(lines, "  </connectors>", "</module>")
}

func viewLines(tag, image string, layers ...string) []string {
	lines := []string{
		fmt.Sprintf("    <%s>", tag),
		fmt.Sprintf(`      <layers image="%s">`, esc(image)),
	}
	for _, l := range layers {
		lines = append(lines, fmt.Sprintf(`        <layer layerId="%s"/>`, l))
	}
	return append(lines, "      </layers>", fmt.Sprintf("    </%s>", tag))
}

func (c Connector) lines() []string {
	lines := []string{
		fmt.Sprintf(`    <connector id="%s" type="male" name="%s">`, c.ID(), c.Name()),
		fmt.Sprintf("      <description>%s</description>", c.Name()),
		"      <views>",
	}
	if c.Breadboard != "" {
		lines = append(lines,
			"        <breadboardView>",
			fmt.Sprintf(`          <p layer="breadboard" svgId="%s"/>`, c.Breadboard),
			"        </breadboardView>")
	}
	if c.SchematicPin != "" {
		lines = append(lines,
			"        <schematicView>",
			fmt.Sprintf(`          <p layer="schematic" svgId="%s" terminalId="%s"/>`, c.SchematicPin, c.SchematicTerminal),
			"        </schematicView>")
	}
	if c.Copper1 != "" {
		lines = append(lines, "        <pcbView>")
		if c.Copper0 != "" {
			lines = append(lines, fmt.Sprintf(`          <p layer="copper0" svgId="%s"/>`, c.Copper0))
		}
		lines = append(lines,
			fmt.Sprintf(`          <p layer="copper1" svgId="%s"/>`, c.Copper1),
			"        </pcbView>")
	}
	return append(lines, "      </views>", "    </connector>")
}

// Render returns the descriptor as XML text.
func (d *Descriptor) Render() string {
	return strings.Join(d.Lines(), "\n") + "\n"
}

// SVGIDs returns every view element id the descriptor references.
func (d *Descriptor) SVGIDs(view part.View) []string {
	var ids []string
	for _, c := range d.Connectors {
		switch view {
		case part.Breadboard:
			ids = appendNonEmpty(ids, c.Breadboard)
		case part.Schematic:
			ids = appendNonEmpty(ids, c.SchematicPin, c.SchematicTerminal)
		case part.PCB:
			ids = appendNonEmpty(ids, c.Copper1)
		}
	}
	return ids
}

func appendNonEmpty(dst []string, ids ...string) []string {
	for _, id := range ids {
		if id != "" {
			dst = append(dst, id)
		}
	}
	return dst
}

func esc(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
