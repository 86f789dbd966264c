package part

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() Spec {
	return Spec{
		Kind:    MaleHeader,
		Rows:    4,
		Columns: 4,
		Pitch:   1,
		Mount:   THT,
		Pad:     Circle,
		Order:   ByColumn,
		Color:   "#404040",
		Version: 1,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr bool
	}{
		{name: "valid tht circle", mutate: func(*Spec) {}},
		{name: "valid tht oblong", mutate: func(s *Spec) { s.Pad = Oblong }},
		{name: "valid smd rectangle", mutate: func(s *Spec) { s.Mount = SMD; s.Pad = Rectangle }},
		{name: "zero rows", mutate: func(s *Spec) { s.Rows = 0 }, wantErr: true},
		{name: "zero columns", mutate: func(s *Spec) { s.Columns = 0 }, wantErr: true},
		{name: "negative pitch", mutate: func(s *Spec) { s.Pitch = -1 }, wantErr: true},
		{name: "nan pitch", mutate: func(s *Spec) { s.Pitch = math.NaN() }, wantErr: true},
		{name: "infinite pitch", mutate: func(s *Spec) { s.Pitch = math.Inf(1) }, wantErr: true},
		{name: "smd circle", mutate: func(s *Spec) { s.Mount = SMD }, wantErr: true},
		{name: "smd oblong", mutate: func(s *Spec) { s.Mount = SMD; s.Pad = Oblong }, wantErr: true},
		{name: "tht rectangle", mutate: func(s *Spec) { s.Pad = Rectangle }, wantErr: true},
		{name: "unknown mount", mutate: func(s *Spec) { s.Mount = "wirewrap" }, wantErr: true},
		{name: "bad color", mutate: func(s *Spec) { s.Color = "brown" }, wantErr: true},
		{name: "version zero", mutate: func(s *Spec) { s.Version = 0 }, wantErr: true},
		{name: "unknown kind", mutate: func(s *Spec) { s.Kind = "socket" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSpec()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSpec), "error %v should wrap ErrInvalidSpec", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSupports(t *testing.T) {
	s := validSpec()
	for _, v := range AllViews {
		assert.NoError(t, s.Supports(v), "male header %s", v)
	}

	s.Kind = FemaleHeader
	assert.NoError(t, s.Supports(Breadboard))
	assert.NoError(t, s.Supports(PCB))

	err := s.Supports(Schematic)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnimplemented)
	assert.Contains(t, err.Error(), "schematic")
	assert.Contains(t, err.Error(), "female-header")
}

func TestNormalizedSingleColumn(t *testing.T) {
	s := validSpec()
	s.Columns = 1
	assert.Equal(t, ByRow, s.Normalized().Order)

	s.Columns = 2
	assert.Equal(t, ByColumn, s.Normalized().Order)
}

func TestParseEnums(t *testing.T) {
	k, err := ParseKind(" Male-Header ")
	require.NoError(t, err)
	assert.Equal(t, MaleHeader, k)

	_, err = ParseMount("through")
	assert.ErrorIs(t, err, ErrInvalidSpec)

	p, err := ParsePad("OBLONG")
	require.NoError(t, err)
	assert.Equal(t, Oblong, p)

	o, err := ParseOrder("row")
	require.NoError(t, err)
	assert.Equal(t, ByRow, o)

	v, err := ParseView("pcb")
	require.NoError(t, err)
	assert.Equal(t, PCB, v)
}

func TestConfigResolve(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "0.5mm", want: 1},
		{in: "0.1IN", want: 5.08},
		{in: "2.54", want: 2.54},
		{in: "0", wantErr: true},
		{in: "huge", wantErr: true},
		{in: "nan", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "inf", wantErr: true},
		{in: "+Infinity", wantErr: true},
		{in: "-inf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cfg.ResolvePitch(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	col, err := cfg.ResolveColor("Brown")
	require.NoError(t, err)
	assert.Equal(t, "#404040", col)

	col, err = cfg.ResolveColor("#A0B0C0")
	require.NoError(t, err)
	assert.Equal(t, "#a0b0c0", col)

	_, err = cfg.ResolveColor("mauve")
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestConfigIsolation(t *testing.T) {
	cfg := DefaultConfig()
	pitches := cfg.Pitches()
	pitches["0.5mm"] = 99

	got, err := cfg.ResolvePitch("0.5mm")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "mutating the returned table must not change the config")

	names := cfg.PitchNames()
	require.NotEmpty(t, names)
	assert.Equal(t, "0.5mm", names[0])
	assert.Equal(t, "1in", names[len(names)-1])
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
author: Bench
fritzing_version: 1.0.4
schematic_pitch: 2mm
references:
  pcb_oblong: custom_oblong.svg
pitches:
  3.96mm: 7.7953
colors:
  black: "#000000"
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "Bench", cfg.Author())
	assert.Equal(t, "1.0.4", cfg.FritzingVersion())
	assert.Equal(t, 4.0, cfg.SchematicPitch())
	assert.Equal(t, "custom_oblong.svg", cfg.References().PCBOblong)
	assert.Equal(t, DefaultConfig().References().PCBCircle, cfg.References().PCBCircle)

	p, err := cfg.ResolvePitch("3.96mm")
	require.NoError(t, err)
	assert.Equal(t, 7.7953, p)

	c, err := cfg.ResolveColor("black")
	require.NoError(t, err)
	assert.Equal(t, "#000000", c)

	// the default config is untouched
	_, err = DefaultConfig().ResolveColor("black")
	assert.Error(t, err)
}

func TestParseConfigRejectsBadEntries(t *testing.T) {
	_, err := ParseConfig([]byte("colors:\n  bad: nope\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("pitches:\n  zero: 0\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("pitches:\n  nan: .nan\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("pitches:\n  inf: .inf\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("schematic_pitch: nan\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("schematic_pitch: wide\n"))
	assert.Error(t, err)
}

func TestReferenceFile(t *testing.T) {
	cfg := DefaultConfig()
	s := validSpec()

	ref, err := cfg.ReferenceFile(PCB, s)
	require.NoError(t, err)
	assert.Equal(t, cfg.References().PCBCircle, ref)

	s.Pad = Oblong
	ref, err = cfg.ReferenceFile(PCB, s)
	require.NoError(t, err)
	assert.Equal(t, cfg.References().PCBOblong, ref)

	_, err = cfg.ReferenceFile(View("icon"), s)
	assert.ErrorIs(t, err, ErrUnimplemented)
}
