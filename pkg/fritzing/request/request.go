// Package request decodes generation requests from flags, compact part
// codes and batch files, and resolves them into validated part specs.
package request

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
)

// Request is an unresolved generation request. Names (pitch, color) are
// resolved against a part.Config by Resolve. Empty strings and nil numbers
// mean "not given"; an explicit zero is kept so that Resolve can reject it.
type Request struct {
	Code    string   `yaml:"code,omitempty"`
	Kind    string   `yaml:"kind,omitempty"`
	Rows    *int     `yaml:"rows,omitempty"`
	Columns *int     `yaml:"columns,omitempty"`
	Pitch   string   `yaml:"pitch,omitempty"`
	Mount   string   `yaml:"mount,omitempty"`
	Pad     string   `yaml:"pad,omitempty"`
	Order   string   `yaml:"order,omitempty"`
	Color   string   `yaml:"color,omitempty"`
	Version *int     `yaml:"version,omitempty"`
	Views   []string `yaml:"views,omitempty"`
	UUID    string   `yaml:"uuid,omitempty"`
}

// Default is the request used when nothing else is given: a 4x4 male
// header at the 0.5mm base pitch with round through-hole pads.
func Default() Request {
	return Request{
		Kind:    string(part.MaleHeader),
		Rows:    lo.ToPtr(4),
		Columns: lo.ToPtr(4),
		Pitch:   "0.5mm",
		Mount:   string(part.THT),
		Pad:     string(part.Circle),
		Order:   string(part.ByColumn),
		Color:   "brown",
		Version: lo.ToPtr(1),
	}
}

// Merge returns r with every field that is set in o replaced by o's value.
// A compact code in o is expanded first, so explicit fields in o win over
// the code.
func (r Request) Merge(o Request) (Request, error) {
	if o.Code != "" {
		coded, err := ParseCode(o.Code)
		if err != nil {
			return Request{}, err
		}
		r = r.overlay(coded)
		o.Code = ""
	}
	return r.overlay(o), nil
}

func (r Request) overlay(o Request) Request {
	setString(&r.Kind, o.Kind)
	setInt(&r.Rows, o.Rows)
	setInt(&r.Columns, o.Columns)
	setString(&r.Pitch, o.Pitch)
	setString(&r.Mount, o.Mount)
	setString(&r.Pad, o.Pad)
	setString(&r.Order, o.Order)
	setString(&r.Color, o.Color)
	setInt(&r.Version, o.Version)
	setString(&r.UUID, o.UUID)
	if len(o.Views) > 0 {
		r.Views = append([]string(nil), o.Views...)
	}
	return r
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst **int, v *int) {
	if v != nil {
		*dst = lo.ToPtr(*v)
	}
}

// Resolve turns the request into a validated part.Spec.
func (r Request) Resolve(cfg part.Config) (part.Spec, error) {
	kind, err := part.ParseKind(r.Kind)
	if err != nil {
		return part.Spec{}, err
	}
	mount, err := part.ParseMount(r.Mount)
	if err != nil {
		return part.Spec{}, err
	}
	pad, err := part.ParsePad(r.Pad)
	if err != nil {
		return part.Spec{}, err
	}
	order, err := part.ParseOrder(r.Order)
	if err != nil {
		return part.Spec{}, err
	}
	pitch, err := cfg.ResolvePitch(r.Pitch)
	if err != nil {
		return part.Spec{}, err
	}
	color, err := cfg.ResolveColor(r.Color)
	if err != nil {
		return part.Spec{}, err
	}

	spec := part.Spec{
		Kind:    kind,
		Rows:    lo.FromPtr(r.Rows),
		Columns: lo.FromPtr(r.Columns),
		Pitch:   pitch,
		Mount:   mount,
		Pad:     pad,
		Order:   order,
		Color:   color,
		Version: lo.FromPtr(r.Version),
	}
	if err := spec.Validate(); err != nil {
		return part.Spec{}, err
	}
	return spec.Normalized(), nil
}

// ResolveViews returns the requested views, or every view when none are
// named.
func (r Request) ResolveViews() ([]part.View, error) {
	if len(r.Views) == 0 {
		return append([]part.View(nil), part.AllViews...), nil
	}
	seen := make(map[part.View]bool, len(r.Views))
	var views []part.View
	for _, name := range r.Views {
		for _, field := range strings.Split(name, ",") {
			if strings.TrimSpace(field) == "" {
				continue
			}
			v, err := part.ParseView(field)
			if err != nil {
				return nil, err
			}
			if seen[v] {
				continue
			}
			seen[v] = true
			views = append(views, v)
		}
	}
	if len(views) == 0 {
		return nil, fmt.Errorf("%w: no views requested", part.ErrInvalidSpec)
	}
	// keep generation order independent of the order the views were named
	ordered := make([]part.View, 0, len(views))
	for _, v := range part.AllViews {
		if seen[v] {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}
