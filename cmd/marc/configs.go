package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/marc-format/marc/encode"
	"github.com/signadot/marc-format/marc/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`

	M bool `cli:"name=m aliases=marc desc='do i/o in marc'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// checkFormatFlags rejects more than one of -m, -j and -y.
func (cfg *MainConfig) checkFormatFlags() error {
	var set []string
	for _, f := range []struct {
		name string
		on   bool
	}{{"-m", cfg.M}, {"-j", cfg.J}, {"-y", cfg.Y}} {
		if f.on {
			set = append(set, f.name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("%w: %s are mutually exclusive", cli.ErrUsage, strings.Join(set, " and "))
	}
	return nil
}

// openOut redirects command output to the file named by -o.
func (cfg *MainConfig) openOut(cc *cli.Context, name string) (any, error) {
	cfg.Out = name
	if name == "-" {
		return nil, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	if err := cfg.CloseOut(); err != nil {
		fmt.Fprintf(os.Stderr, "marc: closing %s: %v\n", cfg.Out, err)
	}
	cfg.CloseOut = nil
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.M:
		return format.MarcFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.MarcFormat, false
}

// inFormat picks the format of file: -I, then -m/-j/-y, then the file
// suffix, then marc.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if f, ok := format.FromPath(file); ok {
		return f
	}
	return format.MarcFormat
}

// outFormat picks the output format: -O, then -m/-j/-y, then dflt.
func (cfg *MainConfig) outFormat(dflt format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return dflt
}

// colors reports whether output to w is colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.colors(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to the source file'"`
	Diff  bool `cli:"name=d desc='show a diff instead of the result'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='do not print diagnostics'"`

	Check *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='keep comments in marc output'"`

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Raw bool `cli:"name=r desc='print string results without quotes'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge  bool `cli:"name=merge desc='treat the patch as a JSON merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=U desc='lines of context around changes'"`

	Diff *cli.Command
}
