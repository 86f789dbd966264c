package sexp

import (
	"strings"
	"testing"
)

func TestParseAll(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "atom", input: "male-header", want: []string{"male-header"}},
		{name: "nested", input: "(part (rows 4) (pitch 0.1in))", want: []string{"(part (rows 4) (pitch 0.1in))"}},
		{name: "color is not a comment", input: "(color #404040)", want: []string{"(color #404040)"}},
		{name: "comments", input: "; header\n(a b) ; trailing\n(c)", want: []string{"(a b)", "(c)"}},
		{name: "quoted", input: `(title "two words")`, want: []string{"(title two words)"}},
		{name: "escapes", input: `("a\"b\nc")`, want: []string{"(a\"b\nc)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q): %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d expressions, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Errorf("expr %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unclosed list", input: "(a\n(b c)", want: "line 1: unexpected EOF in list"},
		{name: "stray paren", input: "(a)\n)", want: "line 2: unexpected ')'"},
		{name: "unclosed string", input: `(a "b`, want: "unexpected EOF in string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	exprs, err := ParseString("\n(part\n  (rows 4)\n  (pitch 2.54)\n  (view pcb)\n  (view breadboard)\n  (bad 1 2))")
	if err != nil {
		t.Fatal(err)
	}
	part := exprs[0]

	if Key(part) != "part" {
		t.Errorf("Key = %q, want part", Key(part))
	}
	if l := part.(*List); l.Line() != 2 {
		t.Errorf("Line = %d, want 2", l.Line())
	}

	rows, ok := FindNode(part, "rows")
	if !ok {
		t.Fatal("rows not found")
	}
	if n, err := GetInt(rows, 1); err != nil || n != 4 {
		t.Errorf("GetInt = %d, %v", n, err)
	}

	pitch, _ := FindNode(part, "pitch")
	if f, err := GetFloat(pitch, 1); err != nil || f != 2.54 {
		t.Errorf("GetFloat = %g, %v", f, err)
	}

	if views := FindAllNodes(part, "view"); len(views) != 2 {
		t.Errorf("found %d view nodes, want 2", len(views))
	}

	if _, ok := FindNode(part, "columns"); ok {
		t.Error("found a node that does not exist")
	}

	v, ok, err := GetValue(part, "rows")
	if err != nil || !ok || v != "4" {
		t.Errorf("GetValue(rows) = %q, %v, %v", v, ok, err)
	}
	if _, ok, _ := GetValue(part, "columns"); ok {
		t.Error("GetValue reported a missing key as present")
	}
	if _, _, err := GetValue(part, "bad"); err == nil || !strings.Contains(err.Error(), "line 7") {
		t.Errorf("GetValue(bad) error = %v, want a line 7 error", err)
	}

	if _, err := GetString(rows, 5); err == nil {
		t.Error("GetString out of range returned no error")
	}
	if _, err := GetInt(NewList(Symbol("rows"), Symbol("four")), 1); err == nil {
		t.Error("GetInt accepted a non-number")
	}
}
