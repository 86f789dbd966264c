package sexp

import (
	"fmt"
	"strconv"
)

// Navigation helpers

// Key returns the head symbol of a list, or "" when s is an atom or starts
// with a sub-list.
func Key(s Sexp) string {
	l, ok := s.(*List)
	if !ok {
		return ""
	}
	sym, ok := l.Head().(Symbol)
	if !ok {
		return ""
	}
	return string(sym)
}

// FindNode returns the first child list of s whose head is key.
// Example: FindNode(part, "pitch") finds (pitch 0.1in) in a part list.
func FindNode(s Sexp, key string) (*List, bool) {
	l, ok := s.(*List)
	if !ok {
		return nil, false
	}
	for _, item := range l.Items() {
		if Key(item) == key {
			return item.(*List), true
		}
	}
	return nil, false
}

// FindAllNodes returns every child list of s whose head is key.
func FindAllNodes(s Sexp, key string) []*List {
	var results []*List
	l, ok := s.(*List)
	if !ok {
		return results
	}
	for _, item := range l.Items() {
		if Key(item) == key {
			results = append(results, item.(*List))
		}
	}
	return results
}

// Typed value extraction helpers. Index 0 is the key, 1 the first value.

// GetString extracts the atom at index of a list.
func GetString(s Sexp, index int) (string, error) {
	l, ok := s.(*List)
	if !ok {
		return "", fmt.Errorf("expected list, got atom %q", s)
	}
	item := l.Get(index)
	if item == nil {
		return "", fmt.Errorf("line %d: %s: index %d out of bounds (length %d)", l.line, Key(l), index, l.Len())
	}
	sym, ok := item.(Symbol)
	if !ok {
		return "", fmt.Errorf("line %d: %s: expected atom at index %d, got %s", l.line, Key(l), index, item)
	}
	return string(sym), nil
}

// GetInt extracts an int at index of a list.
func GetInt(s Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}

	return val, nil
}

// GetFloat extracts a float64 at index of a list.
func GetFloat(s Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}

	return val, nil
}

// GetValue returns the single value of a (key value) child of s, and
// whether the child exists.
func GetValue(s Sexp, key string) (string, bool, error) {
	node, ok := FindNode(s, key)
	if !ok {
		return "", false, nil
	}
	if node.Len() != 2 {
		return "", true, fmt.Errorf("line %d: (%s ...) takes exactly one value", node.line, key)
	}
	v, err := GetString(node, 1)
	return v, true, err
}
