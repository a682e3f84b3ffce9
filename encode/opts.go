package encode

type encOpts struct {
	indent int
}

type EncodeOption func(*encOpts)

// EncodeIndent selects pretty-printing with n spaces per level; zero
// means compact output.
func EncodeIndent(n int) EncodeOption {
	return func(o *encOpts) {
		o.indent = n
	}
}
