// Package sqlesc provides tfmt custom-letter handlers for SQL quoting:
// %Q escapes an identifier, %q escapes a string literal.
//
//	cx := sqlesc.NewContext()
//	cx.Format("select * from %Q where name = %q", table, name)
package sqlesc

import "github.com/bjaus/tfmt"

// NewContext returns a tfmt context with %Q bound to [Identifier] and %q
// bound to [Literal].
func NewContext() *tfmt.Context {
	return &tfmt.Context{EscapeQ: Identifier, Escapeq: Literal}
}

// Identifier escapes the argument as a double-quoted SQL identifier,
// doubling embedded double quotes.
func Identifier(dst []byte, arg tfmt.Arg) (int, bool) {
	return escape(dst, arg, '"')
}

// Literal escapes the argument as a single-quoted SQL string literal,
// doubling embedded single quotes.
func Literal(dst []byte, arg tfmt.Arg) (int, bool) {
	return escape(dst, arg, '\'')
}

func escape(dst []byte, arg tfmt.Arg, quote byte) (int, bool) {
	s := text(arg)
	need := len(s) + 2
	for i := 0; i < len(s); i++ {
		if s[i] == quote {
			need++
		}
	}
	if need > len(dst) {
		return need, false
	}
	n := 0
	dst[n] = quote
	n++
	for i := 0; i < len(s); i++ {
		if s[i] == quote {
			dst[n] = quote
			n++
		}
		dst[n] = s[i]
		n++
	}
	dst[n] = quote
	n++
	return n, true
}

// text renders the argument's plain form; non-string arguments quote
// their %v rendering.
func text(arg tfmt.Arg) string {
	switch arg.Kind {
	case tfmt.KindString:
		return arg.Str
	case tfmt.KindRunes:
		return string(arg.Runes)
	}
	return tfmt.Format("%v", arg)
}
