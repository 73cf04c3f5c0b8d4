package tfmt

import (
	"fmt"
	"strconv"
)

// Kind discriminates the value stored in an [Arg].
type Kind uint8

const (
	KindNone    Kind = iota // no argument supplied
	KindPointer             // Num holds the address bits
	KindString
	KindRunes
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat
)

// Arg is one typed formatting input. Integer values of every width live in
// Num as sign-extended two's-complement bits; Kind says how to read them.
// String and rune-slice arguments hold a view of the caller's value, not a
// copy, so the formatted result must be produced before the original goes
// out of scope.
type Arg struct {
	Kind  Kind
	Str   string
	Runes []rune
	Num   uint64
	Float float64
}

// String builds a string argument.
func String(s string) Arg { return Arg{Kind: KindString, Str: s} }

// Runes builds a rune-slice argument. It renders like a string; the UTF-8
// byte length is not known up front, so it always goes through the
// speculative formatting path.
func Runes(r []rune) Arg { return Arg{Kind: KindRunes, Runes: r} }

// Int builds a signed integer argument sized to the platform's int width.
func Int(v int) Arg {
	if strconv.IntSize == 32 {
		return Int32(int32(v))
	}
	return Int64(int64(v))
}

// Uint builds an unsigned integer argument sized to the platform's int width.
func Uint(v uint) Arg {
	if strconv.IntSize == 32 {
		return Uint32(uint32(v))
	}
	return Uint64(uint64(v))
}

// Int32 builds a signed 32-bit argument.
func Int32(v int32) Arg { return Arg{Kind: KindInt32, Num: uint64(int64(v))} }

// Uint32 builds an unsigned 32-bit argument.
func Uint32(v uint32) Arg { return Arg{Kind: KindUint32, Num: uint64(v)} }

// Int64 builds a signed 64-bit argument.
func Int64(v int64) Arg { return Arg{Kind: KindInt64, Num: uint64(v)} }

// Uint64 builds an unsigned 64-bit argument.
func Uint64(v uint64) Arg { return Arg{Kind: KindUint64, Num: v} }

// Float builds a double-precision argument.
func Float(v float64) Arg { return Arg{Kind: KindFloat, Float: v} }

// Pointer builds an opaque pointer argument from its address bits.
func Pointer(p uintptr) Arg { return Arg{Kind: KindPointer, Num: uint64(p)} }

// pack bundles one call's variadic arguments into Args, left to right.
func pack(args []any) []Arg {
	if len(args) == 0 {
		return nil
	}
	pk := make([]Arg, len(args))
	for i, a := range args {
		pk[i] = argOf(a)
	}
	return pk
}

// argOf maps one call-site value onto the closed Kind set. Values outside
// the set degrade to their fmt.Sprint rendering as a string argument; the
// engine never rejects an argument.
func argOf(v any) Arg {
	switch v := v.(type) {
	case Arg:
		return v
	case string:
		return String(v)
	case []rune:
		return Runes(v)
	case []byte:
		return String(string(v))
	case int:
		return Int(v)
	case int8:
		return Int32(int32(v))
	case int16:
		return Int32(int32(v))
	case int32:
		return Int32(v)
	case int64:
		return Int64(v)
	case uint:
		return Uint(v)
	case uint8:
		return Uint32(uint32(v))
	case uint16:
		return Uint32(uint32(v))
	case uint32:
		return Uint32(v)
	case uint64:
		return Uint64(v)
	case uintptr:
		return Pointer(v)
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case nil:
		return Pointer(0)
	default:
		return String(fmt.Sprint(v))
	}
}
