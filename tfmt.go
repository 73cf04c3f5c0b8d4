package tfmt

import (
	"io"
	"strings"
)

const (
	// tokenMax bounds one conversion token, '%' through its letter.
	// Longer tokens pass through as literal text.
	tokenMax = 16

	// maxConversion caps the speculative output of a single conversion.
	// A conversion that still does not fit at this size is dropped.
	maxConversion = 1 << 20

	// minGuess keeps the doubling loop alive for tiny scratch buffers.
	minGuess = 8

	scratchSize = 256
)

// EscapeFunc renders one argument into dst for a custom conversion letter.
// It returns the byte count written, or ok=false when dst is too small;
// the engine then retries with a larger region. Implementations must be
// idempotent, since a retried conversion invokes them again.
type EscapeFunc func(dst []byte, arg Arg) (n int, ok bool)

// Context registers the caller's custom conversion letters. The zero
// value has none, which makes %Q and %q tokens pass through as literal
// text. A Context must not be mutated while formatting calls use it;
// concurrent calls sharing one Context are otherwise safe, as the engine
// holds no other shared state.
type Context struct {
	EscapeQ EscapeFunc // handles %Q
	Escapeq EscapeFunc // handles %q
}

// Format returns the formatted string.
func (cx *Context) Format(format string, args ...any) string {
	var scratch [scratchSize]byte
	return string(cx.appendFormat(scratch[:0], format, pack(args)))
}

// Append formats into dst's spare capacity and returns the result. The
// returned slice aliases dst when the result fits; otherwise it is a
// fresh allocation, per the usual append contract.
func (cx *Context) Append(dst []byte, format string, args ...any) []byte {
	return cx.appendFormat(dst, format, pack(args))
}

// Fprint formats and writes the result to w, returning the byte count
// written. Zero-length results write nothing.
func (cx *Context) Fprint(w io.Writer, format string, args ...any) (int, error) {
	var scratch [scratchSize]byte
	out := cx.appendFormat(scratch[:0], format, pack(args))
	if len(out) == 0 {
		return 0, nil
	}
	return w.Write(out)
}

var defaultCx Context

// Format returns the formatted string, with no custom conversion letters
// registered.
func Format(format string, args ...any) string {
	return defaultCx.Format(format, args...)
}

// Append formats into dst's spare capacity. See [Context.Append].
func Append(dst []byte, format string, args ...any) []byte {
	return defaultCx.Append(dst, format, args...)
}

// Fprint formats and writes the result to w. See [Context.Fprint].
func Fprint(w io.Writer, format string, args ...any) (int, error) {
	return defaultCx.Fprint(w, format, args...)
}

// convLetter reports whether c terminates a conversion token.
func convLetter(c byte) bool {
	switch c {
	case 'a', 'A', 'c', 'C', 'd', 'i', 'e', 'E', 'f', 'g', 'G', 'H',
		'o', 's', 'S', 'u', 'x', 'X', 'p', 'n', 'v', 'q', 'Q':
		return true
	}
	return false
}

// appendFormat drives the whole call: scan the template, copy literal
// runs, and hand each token plus the next packed argument to convert.
// Malformed or under-supplied tokens degrade to literal passthrough;
// nothing here returns an error.
func (cx *Context) appendFormat(dst []byte, format string, args []Arg) []byte {
	out := outbuf{buf: dst[:cap(dst)], pos: len(dst)}

	// Token-free templates copy through wholesale.
	if strings.IndexByte(format, '%') < 0 {
		out.reserve(len(format))
		out.pos += copy(out.buf[out.pos:], format)
		return out.bytes()
	}

	guess := cap(dst) / 4
	if guess < minGuess {
		guess = minGuess
	}

	tokenStart := -1
	iarg := 0
	for i := 0; i < len(format); i++ {
		if tokenStart < 0 {
			if format[i] == '%' {
				tokenStart = i
				continue
			}
			// Literal run: fill the space already reserved without a
			// per-byte capacity check, then come back for more if the run
			// outgrows it. Resumes at the same byte, never re-scans.
			stop := i + out.remaining()
			if stop > len(format) {
				stop = len(format)
			}
			for i < stop && format[i] != '%' {
				out.buf[out.pos] = format[i]
				out.pos++
				i++
			}
			switch {
			case i == len(format):
				return out.bytes()
			case format[i] == '%':
				tokenStart = i
			default:
				out.reserve(1)
				i--
			}
			continue
		}

		c := format[i]
		switch {
		case c == '%':
			// "%%" emits one literal percent and consumes no argument.
			out.add('%')
			tokenStart = -1
		case convLetter(c):
			valid := iarg < len(args) &&
				i-tokenStart < tokenMax-1 &&
				c != 'n' &&
				!(c == 'q' && cx.Escapeq == nil) &&
				!(c == 'Q' && cx.EscapeQ == nil)
			if valid {
				cx.convert(&out, format[tokenStart:i], c, args[iarg], guess)
				iarg++
			} else {
				// Verbatim passthrough: a degradation, not an error.
				for j := tokenStart; j <= i; j++ {
					out.add(format[j])
				}
			}
			tokenStart = -1
		}
	}
	if tokenStart >= 0 {
		// Unterminated trailing token: literal text.
		for j := tokenStart; j < len(format); j++ {
			out.add(format[j])
		}
	}
	return out.bytes()
}

// convert renders one validated token. body is the token from its '%' up
// to but excluding the terminating letter.
func (cx *Context) convert(out *outbuf, body string, letter byte, arg Arg, guess int) {
	if arg.Kind == KindNone {
		return
	}

	if len(body) == 1 && letter != 'q' && letter != 'Q' {
		// Bare token: the common cases skip the native formatter entirely.
		if fastInt(out, letter, arg) {
			return
		}
		if arg.Kind == KindString {
			copy(out.take(len(arg.Str)), arg.Str)
			return
		}
	}

	var spec string
	var value any
	if letter != 'q' && letter != 'Q' {
		var scratch [tokenMax + 2]byte
		spec = rewriteSpec(scratch[:], body, letter, arg.Kind)
		value = nativeValue(arg, letter)
	}

	// Speculative write: reserve a guessed size, format into it, and keep
	// the region only if the conversion fit. Otherwise unwind and retry
	// with double the size up to the ceiling.
	size := guess
	for {
		region := out.take(size)
		var n int
		var fit bool
		switch letter {
		case 'q':
			n, fit = cx.Escapeq(region, arg)
		case 'Q':
			n, fit = cx.EscapeQ(region, arg)
		default:
			if spec == "%s" && arg.Kind == KindString {
				n, fit = copyString(region, arg.Str)
			} else {
				n, fit = nativeAppend(region, spec, value)
			}
		}
		if fit && n <= size {
			out.unwind(size - n)
			return
		}
		out.unwind(size)
		if size >= maxConversion {
			// Hard ceiling: drop this one conversion rather than spin.
			return
		}
		size *= 2
	}
}

// fastInt emits the bare d/i/u/x/X conversions on integer arguments
// directly, reserving the worst-case byte count for the width and base up
// front and unwinding the surplus.
func fastInt(out *outbuf, letter byte, arg Arg) bool {
	var wide bool
	switch arg.Kind {
	case KindInt32, KindUint32:
	case KindInt64, KindUint64:
		wide = true
	default:
		return false
	}

	switch letter {
	case 'd', 'i', 'u':
		// d and i read the bits as signed of the tag's width, u as
		// unsigned; a mismatched tag is reinterpreted either way.
		if letter != 'u' {
			if wide {
				out.unwind(maxDec64 - appendInt(out.take(maxDec64), int64(arg.Num), 10, false))
			} else {
				out.unwind(maxDec32 - appendInt(out.take(maxDec32), int64(int32(arg.Num)), 10, false))
			}
		} else if wide {
			out.unwind(maxDec64 - appendUint(out.take(maxDec64), arg.Num, 10, false))
		} else {
			out.unwind(maxDec32 - appendUint(out.take(maxDec32), uint64(uint32(arg.Num)), 10, false))
		}
		return true
	case 'x', 'X':
		upper := letter == 'X'
		if wide {
			out.unwind(maxHex64 - appendUint(out.take(maxHex64), arg.Num, 16, upper))
		} else {
			out.unwind(maxHex32 - appendUint(out.take(maxHex32), uint64(uint32(arg.Num)), 16, upper))
		}
		return true
	}
	return false
}
