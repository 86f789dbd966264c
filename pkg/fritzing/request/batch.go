package request

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"
)

// batchFile is the YAML batch format:
//
//	defaults:
//	  pitch: 0.1in
//	parts:
//	  - code: male-header 1x40
//	  - kind: female-header
//	    rows: 8
//	    columns: 1
//	    views: [breadboard, pcb]
type batchFile struct {
	Defaults Request   `yaml:"defaults"`
	Parts    []Request `yaml:"parts"`
}

// LoadFile reads a batch file. Files ending in .yaml or .yml are YAML;
// .fzreq and .sexp files are S-expressions.
func LoadFile(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var reqs []Request
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		reqs, err = ParseYAML(data)
	case ".fzreq", ".sexp":
		reqs, err = ParseSexp(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown batch file type %q (want .yaml, .yml, .fzreq or .sexp)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reqs, nil
}

// ParseYAML decodes a YAML batch. Every part starts from Default, then the
// batch defaults, then its own fields.
func ParseYAML(data []byte) ([]Request, error) {
	var file batchFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}
	return expand(file.Defaults, file.Parts)
}

// ParseSexp decodes an S-expression batch:
//
//	; shared settings
//	(defaults (pitch 0.1in) (color red))
//	(part (code "male-header 1x40"))
//	(part (kind female-header) (rows 8) (columns 1) (views breadboard pcb))
func ParseSexp(r io.Reader) ([]Request, error) {
	exprs, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}

	var defaults Request
	var parts []Request
	for _, e := range exprs {
		l, ok := e.(*sexp.List)
		if !ok {
			return nil, fmt.Errorf("unexpected atom %q at top level", e)
		}
		req, err := fromSexp(l)
		if err != nil {
			return nil, err
		}
		switch sexp.Key(l) {
		case "defaults":
			setString(&defaults.Code, req.Code)
			defaults = defaults.overlay(req)
		case "part":
			parts = append(parts, req)
		default:
			return nil, fmt.Errorf("line %d: unknown form (%s ...), want (defaults ...) or (part ...)", l.Line(), sexp.Key(l))
		}
	}

	return expand(defaults, parts)
}

func expand(defaults Request, parts []Request) ([]Request, error) {
	base, err := Default().Merge(defaults)
	if err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	out := make([]Request, 0, len(parts))
	for i, p := range parts {
		r, err := base.Merge(p)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func fromSexp(l *sexp.List) (Request, error) {
	var r Request

	text := map[string]*string{
		"code":  &r.Code,
		"kind":  &r.Kind,
		"pitch": &r.Pitch,
		"mount": &r.Mount,
		"pad":   &r.Pad,
		"order": &r.Order,
		"color": &r.Color,
		"uuid":  &r.UUID,
	}
	numbers := map[string]**int{
		"rows":    &r.Rows,
		"columns": &r.Columns,
		"version": &r.Version,
	}

	for _, item := range l.Items() {
		field, ok := item.(*sexp.List)
		if !ok {
			return Request{}, fmt.Errorf("line %d: unexpected atom %q in (%s ...)", l.Line(), item, sexp.Key(l))
		}
		key := sexp.Key(field)

		if dst, ok := text[key]; ok {
			v, err := single(field)
			if err != nil {
				return Request{}, err
			}
			*dst = v
			continue
		}
		if dst, ok := numbers[key]; ok {
			if _, err := single(field); err != nil {
				return Request{}, err
			}
			n, err := sexp.GetInt(field, 1)
			if err != nil {
				return Request{}, fmt.Errorf("line %d: %s: %w", field.Line(), key, err)
			}
			*dst = &n
			continue
		}
		if key == "views" {
			for i := 1; i < field.Len(); i++ {
				v, err := sexp.GetString(field, i)
				if err != nil {
					return Request{}, err
				}
				r.Views = append(r.Views, v)
			}
			continue
		}

		return Request{}, fmt.Errorf("line %d: unknown field %q", field.Line(), key)
	}

	return r, nil
}

func single(field *sexp.List) (string, error) {
	if field.Len() != 2 {
		return "", fmt.Errorf("line %d: (%s ...) takes exactly one value", field.Line(), sexp.Key(field))
	}
	return sexp.GetString(field, 1)
}
