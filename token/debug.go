package token

import (
	"fmt"
	"os"
	"strconv"
)

func PrintTokens(toks []Token, msg string) {
	fmt.Fprintf(os.Stderr, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(os.Stderr, "\t%s %s %s\n", t.Type, strconvQuote(t.Bytes), t.Span)
	}
}

func strconvQuote(d []byte) string {
	return strconv.Quote(string(d))
}
