package tfmt

import "fmt"

// nativeAppend is the generic formatting fallback: it renders value per
// spec into region and reports the byte count. ok is false when region is
// too small to hold the result; the caller retries with a larger region.
// The capacity-clamped slice forces the underlying append to reallocate
// rather than write past the region, which is how "did not fit" is
// detected.
func nativeAppend(region []byte, spec string, value any) (n int, ok bool) {
	out := fmt.Appendf(region[:0:len(region)], spec, value)
	if len(out) > len(region) {
		return len(out), false
	}
	return len(out), true
}

// copyString is the bare "%s" shortcut: a string's byte length is known,
// so there is nothing to speculate about.
func copyString(region []byte, s string) (n int, ok bool) {
	if len(s) > len(region) {
		return len(s), false
	}
	return copy(region, s), true
}

// verbFor reconciles the requested conversion letter with the argument's
// actual type and yields the native verb: the type wins over a mismatched
// letter, except where the letter asks for a compatible alternative
// representation. C-style letters with no native counterpart are
// normalized here (u and i to d, hex-float a/A to x/X); this table is the
// whole of the per-platform spec rewrite — the native layer sizes integers
// itself, so no length modifier is spliced in.
func verbFor(kind Kind, letter byte) byte {
	switch kind {
	case KindString, KindRunes:
		return 's'
	case KindPointer:
		return 'x'
	case KindFloat:
		switch letter {
		case 'e', 'E', 'f', 'g', 'G':
			return letter
		case 'a':
			return 'x'
		case 'A':
			return 'X'
		}
		return 'g'
	}
	// Integer kinds.
	if letter == 'c' && kind == KindInt32 {
		return 'c'
	}
	switch letter {
	case 'o', 'x', 'X':
		return letter
	}
	return 'd'
}

// unsignedLetter reports whether letter reinterprets a signed integer
// argument as its unsigned same-width value, as the native conversions
// o, u, x, and X do.
func unsignedLetter(letter byte) bool {
	return letter == 'o' || letter == 'u' || letter == 'x' || letter == 'X'
}

// signedLetter is the mirror image: d and i read an unsigned argument as
// signed of the same width.
func signedLetter(letter byte) bool {
	return letter == 'd' || letter == 'i'
}

// rewriteSpec builds the native conversion spec for one token: the body's
// flags, width, and precision carried over, the `*` width marker dropped
// (width-from-argument is unsupported), C length modifiers stripped, and
// the reconciled verb appended. The argument's tag already fixes the
// width, so a trailing l/h/w run (%ld, %hd, %lld, %ls) carries no
// information the native layer needs. body starts at the '%' and is at
// most tokenMax-1 bytes.
func rewriteSpec(scratch []byte, body string, letter byte, kind Kind) string {
	n := 0
	hash := false
	for j := 0; j < len(body); j++ {
		if body[j] == '*' {
			continue
		}
		if body[j] == '#' {
			hash = true
		}
		scratch[n] = body[j]
		n++
	}
	for n > 1 && (scratch[n-1] == 'l' || scratch[n-1] == 'h' || scratch[n-1] == 'w') {
		n--
	}
	if kind == KindPointer && !hash {
		// Pointers always carry the 0x prefix.
		copy(scratch[2:n+1], scratch[1:n])
		scratch[1] = '#'
		n++
	}
	scratch[n] = verbFor(kind, letter)
	n++
	return string(scratch[:n])
}

// nativeValue extracts the value to hand to the native formatter, applying
// the unsigned reinterpretation that o/u/x/X request on signed arguments.
func nativeValue(arg Arg, letter byte) any {
	switch arg.Kind {
	case KindString:
		return arg.Str
	case KindRunes:
		return string(arg.Runes)
	case KindInt32:
		if letter == 'c' {
			return rune(int32(arg.Num))
		}
		if unsignedLetter(letter) {
			return uint32(arg.Num)
		}
		return int32(arg.Num)
	case KindUint32:
		if signedLetter(letter) {
			return int32(arg.Num)
		}
		return uint32(arg.Num)
	case KindInt64:
		if unsignedLetter(letter) {
			return arg.Num
		}
		return int64(arg.Num)
	case KindUint64:
		if signedLetter(letter) {
			return int64(arg.Num)
		}
		return arg.Num
	case KindFloat:
		return arg.Float
	case KindPointer:
		return uintptr(arg.Num)
	}
	return nil
}
