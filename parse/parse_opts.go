package parse

type parseOpts struct {
	comments bool
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comments are kept.  It defaults to true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}
