// Package tfmt is a type-tagged, printf-style text formatter. Arguments
// carry their own type, so conversion letters never have to match: %v
// works for everything, and a mismatched letter is reconciled against the
// argument's actual type instead of misreading memory.
//
//	tfmt.Format("%v %v", "abc", 123)  // "abc 123"
//	tfmt.Format("%s %d", "abc", 123)  // "abc 123"
//	tfmt.Format("%.3f", 25.5)         // "25.500"
//	tfmt.Format("%x", 255)            // "ff"
//
// # Entry Points
//
// [Format] returns a string. [Append] is the primitive it is built on: it
// formats into the spare capacity of a caller-supplied slice and only
// allocates when the result outgrows it. [Fprint] writes the result to an
// [io.Writer]. All three have [Context] method forms for callers using
// custom conversion letters.
//
// # Arguments
//
// Each variadic argument maps onto a closed set of shapes: signed and
// unsigned integers of 32 and 64 bits, float64, string, []rune, and
// pointers (as uintptr). Values outside the set fall back to their
// fmt.Sprint rendering as a string argument. Pre-built [Arg] values pass
// through untouched, which is how a custom type can pick its own shape.
//
// # Conversions
//
// The usual flags, width, and precision pass through to the conversion
// (%-8s, %05d, %.2f, %#x). The argument's type decides the family: a
// string prints as a string no matter the letter, an integer honors
// d/i/o/u/x/X and otherwise prints decimal, a float honors e/E/f/g/G and
// otherwise prints %g, and %c on a 32-bit integer prints the character.
// o, u, x, and X reinterpret signed arguments as unsigned, the way the
// native conversions do.
//
// Malformed input never fails the call: a token with no remaining
// argument, an overlong token, %n, or an unregistered custom letter is
// copied to the output verbatim, and an unterminated trailing token is
// literal text. The one soft limit is that a single conversion's output
// is capped at 1 MiB; beyond that the conversion is dropped.
//
// Not supported: positional arguments (%1$s) and width from an argument
// (%*d, where the * is ignored).
//
// # Custom Letters
//
// A [Context] registers handlers for the two custom conversion letters %Q
// and %q:
//
//	cx := tfmt.Context{EscapeQ: myEscape}
//	cx.Format("select %Q", name)
//
// Handlers write into a provided region and report when it is too small;
// the engine retries with a larger one, so handlers must be idempotent.
// See [EscapeFunc] and the sqlesc subpackage, which provides handlers for
// SQL identifiers and string literals.
//
// # Concurrency
//
// Formatting holds no shared mutable state; concurrent calls are safe as
// long as a shared [Context] is not mutated while in use.
package tfmt
