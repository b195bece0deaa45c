package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		g, err := ParseFormat(f.String())
		if err != nil || g != f {
			t.Errorf("%s: got %s %v", f, g, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		f    Format
		ok   bool
	}{
		{"a/b.marc", MarcFormat, true},
		{"x.yml", YAMLFormat, true},
		{"x.json", JSONFormat, true},
		{"Cargo.toml", TOMLFormat, true},
		{"Makefile", 0, false},
		{"x.txt", 0, false},
	}
	for _, tt := range tests {
		f, ok := FromPath(tt.path)
		if ok != tt.ok || f != tt.f {
			t.Errorf("%s: got %s %v", tt.path, f, ok)
		}
	}
}

func TestSuffix(t *testing.T) {
	for _, f := range AllFormats() {
		g, ok := FromPath("doc" + f.Suffix())
		if !ok || g != f {
			t.Errorf("%s: got %s %v", f, g, ok)
		}
	}
	if s := Format(7).Suffix(); s != "" {
		t.Errorf("got %q", s)
	}
}

func TestText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("YML")); err != nil || f != YAMLFormat {
		t.Errorf("got %s %v", f, err)
	}
	if _, err := Format(-1).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}
