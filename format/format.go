package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

type Format int

const (
	MarcFormat Format = iota
	YAMLFormat
	JSONFormat
	TOMLFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name    string
	aliases []string
	suffix  string
}

var formats = [...]formatInfo{
	MarcFormat: {name: "marc", aliases: []string{"m"}, suffix: ".marc"},
	YAMLFormat: {name: "yaml", aliases: []string{"y", "yml"}, suffix: ".yaml"},
	JSONFormat: {name: "json", aliases: []string{"j"}, suffix: ".json"},
	TOMLFormat: {name: "toml", aliases: []string{"t", "tml"}, suffix: ".toml"},
}

// ParseFormat accepts a format name or one of its short aliases, in
// any case.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for i, fi := range formats {
		if fi.name == lv || slices.Contains(fi.aliases, lv) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses the format of a file from its suffix.
func FromPath(p string) (Format, bool) {
	ext := filepath.Ext(p)
	if ext == "" {
		return 0, false
	}
	f, err := ParseFormat(ext[1:])
	if err != nil {
		return 0, false
	}
	return f, true
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formats)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("<err: %d is not a format>", int(f))
	}
	return formats[f].name
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formats[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format, including the dot.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return formats[f].suffix
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{MarcFormat, YAMLFormat, JSONFormat, TOMLFormat}
}
