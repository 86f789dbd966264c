package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/samber/lo"
	"golang.org/x/term"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/request"
)

var errNoTerminal = errors.New("--interactive needs a terminal on stdin")

// answers receives the prompt results. Numbers stay strings until the
// request is rebuilt.
type answers struct {
	Kind    string
	Rows    string
	Columns string
	Pitch   string
	Mount   string
	Pad     string
	Order   string
	Color   string
	Version string
}

// promptRequest asks for every request field, offering the current values
// as defaults.
func promptRequest(r request.Request, cfg part.Config) (request.Request, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return request.Request{}, errNoTerminal
	}

	colors := lo.Keys(cfg.Colors())
	sort.Strings(colors)
	if !lo.Contains(colors, r.Color) {
		colors = append(colors, r.Color)
	}
	pitches := cfg.PitchNames()
	if !lo.Contains(pitches, r.Pitch) {
		pitches = append(pitches, r.Pitch)
	}

	qs := []*survey.Question{
		{
			Name: "kind",
			Prompt: &survey.Select{
				Message: "Part kind:",
				Options: []string{string(part.MaleHeader), string(part.FemaleHeader)},
				Default: r.Kind,
			},
		},
		{
			Name:     "rows",
			Prompt:   &survey.Input{Message: "Rows:", Default: strconv.Itoa(lo.FromPtr(r.Rows))},
			Validate: positive,
		},
		{
			Name:     "columns",
			Prompt:   &survey.Input{Message: "Columns:", Default: strconv.Itoa(lo.FromPtr(r.Columns))},
			Validate: positive,
		},
		{
			Name: "pitch",
			Prompt: &survey.Select{
				Message:  "Pitch:",
				Options:  pitches,
				Default:  r.Pitch,
				PageSize: 10,
			},
		},
		{
			Name: "mount",
			Prompt: &survey.Select{
				Message: "Mount:",
				Options: []string{string(part.THT), string(part.SMD)},
				Default: r.Mount,
			},
		},
		{
			Name: "pad",
			Prompt: &survey.Select{
				Message: "Pad shape:",
				Options: []string{string(part.Circle), string(part.Oblong), string(part.Rectangle)},
				Default: r.Pad,
				Help:    "through-hole parts take circle or oblong pads, SMD parts rectangle pads",
			},
		},
		{
			Name: "order",
			Prompt: &survey.Select{
				Message: "Pin order:",
				Options: []string{string(part.ByRow), string(part.ByColumn)},
				Default: r.Order,
			},
		},
		{
			Name: "color",
			Prompt: &survey.Select{
				Message: "Color:",
				Options: colors,
				Default: r.Color,
			},
		},
		{
			Name:     "version",
			Prompt:   &survey.Input{Message: "Version:", Default: strconv.Itoa(lo.FromPtr(r.Version))},
			Validate: positive,
		},
	}

	var a answers
	if err := survey.Ask(qs, &a); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return request.Request{}, fmt.Errorf("aborted")
		}
		return request.Request{}, err
	}

	r.Kind, r.Pitch, r.Mount, r.Pad, r.Order, r.Color = a.Kind, a.Pitch, a.Mount, a.Pad, a.Order, a.Color
	r.Rows = lo.ToPtr(atoi(a.Rows))
	r.Columns = lo.ToPtr(atoi(a.Columns))
	r.Version = lo.ToPtr(atoi(a.Version))

	if part.Kind(r.Kind) == part.FemaleHeader && len(r.Views) == 0 {
		r.Views = []string{string(part.Breadboard), string(part.PCB)}
	}
	return r, nil
}

// atoi converts an answer that already passed positive.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func positive(v interface{}) error {
	s, _ := v.(string)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("%q is not a positive number", s)
	}
	return nil
}
