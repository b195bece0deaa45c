// Package debug holds environment-controlled debug switches.
//
// Each switch is read once at startup from a MARC_DEBUG_* variable and
// accepts anything strconv.ParseBool does.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Eval   bool
	Encode bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("MARC_DEBUG_TOKENS")
	d.Parse = boolEnv("MARC_DEBUG_PARSE")
	d.Eval = boolEnv("MARC_DEBUG_EVAL")
	d.Encode = boolEnv("MARC_DEBUG_ENCODE")
	d.LSP = boolEnv("MARC_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Encode() bool {
	return d.Encode
}
func LSP() bool {
	return d.LSP
}

// Logf writes to stderr.  Maps and slices among args are rendered as JSON.
func Logf(format string, args ...any) {
	for i, arg := range args {
		switch arg.(type) {
		case map[string]any, []any:
			args[i] = jsonString(arg)
		}
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

func jsonString(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
