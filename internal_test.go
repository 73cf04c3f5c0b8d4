package tfmt

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fast integer encoder ---

func TestAppendIntMatchesStrconv(t *testing.T) {
	t.Parallel()
	values := []int64{0, 1, -1, 9, 10, -10, 99, 100, 12345, -12345,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, base := range []int64{10, 16, 36} {
		for _, v := range values {
			var dst [maxDec64 + 1]byte
			n := appendInt(dst[:], v, base, false)
			assert.Equal(t, strconv.FormatInt(v, int(base)), string(dst[:n]),
				"value %d base %d", v, base)
		}
	}
}

func TestAppendUintMatchesStrconv(t *testing.T) {
	t.Parallel()
	values := []uint64{0, 1, 9, 10, 255, 256, 1 << 20, math.MaxUint32, math.MaxUint64}
	for _, base := range []uint64{10, 16, 36} {
		for _, v := range values {
			var dst [maxDec64]byte
			n := appendUint(dst[:], v, base, false)
			assert.Equal(t, strconv.FormatUint(v, int(base)), string(dst[:n]),
				"value %d base %d", v, base)
		}
	}
}

func TestAppendUintUpper(t *testing.T) {
	t.Parallel()
	var dst [maxHex64]byte
	n := appendUint(dst[:], 0xdeadbeef, 16, true)
	assert.Equal(t, "DEADBEEF", string(dst[:n]))
}

// --- Growable output buffer ---

func TestOutbufStaysBorrowed(t *testing.T) {
	t.Parallel()
	scratch := make([]byte, 16)
	b := outbuf{buf: scratch}
	b.add('a')
	b.add('b')
	assert.False(t, b.owned)
	assert.Equal(t, "ab", string(b.bytes()))
	assert.Same(t, &scratch[0], &b.buf[0])
}

func TestOutbufGrowPreserves(t *testing.T) {
	t.Parallel()
	b := outbuf{buf: make([]byte, 4)}
	for _, c := range []byte("abcdefgh") {
		b.add(c)
	}
	assert.True(t, b.owned)
	assert.Equal(t, "abcdefgh", string(b.bytes()))
	assert.GreaterOrEqual(t, len(b.buf), 8)
}

func TestOutbufTakeUnwind(t *testing.T) {
	t.Parallel()
	b := outbuf{buf: make([]byte, 32)}
	region := b.take(10)
	require.Len(t, region, 10)
	n := copy(region, "abc")
	b.unwind(10 - n)
	assert.Equal(t, "abc", string(b.bytes()))

	// A fully unwound take leaves no trace.
	b.take(20)
	b.unwind(20)
	assert.Equal(t, "abc", string(b.bytes()))
}

func TestOutbufReserveAtLeastDoubles(t *testing.T) {
	t.Parallel()
	b := outbuf{buf: make([]byte, 8)}
	b.take(8)
	b.reserve(1)
	assert.GreaterOrEqual(t, len(b.buf), 16)
	b.reserve(1000)
	assert.GreaterOrEqual(t, len(b.buf), 1008)
}

// --- Spec rewrite ---

func TestRewriteSpec(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		body   string
		letter byte
		kind   Kind
		want   string
	}{
		"generic float":     {body: "%", letter: 'v', kind: KindFloat, want: "%g"},
		"float letter kept": {body: "%.3", letter: 'f', kind: KindFloat, want: "%.3f"},
		"hex float":         {body: "%", letter: 'a', kind: KindFloat, want: "%x"},
		"int u normalized":  {body: "%", letter: 'u', kind: KindInt64, want: "%d"},
		"int i normalized":  {body: "%", letter: 'i', kind: KindInt32, want: "%d"},
		"int hex kept":      {body: "%", letter: 'X', kind: KindUint64, want: "%X"},
		"char on int32":     {body: "%", letter: 'c', kind: KindInt32, want: "%c"},
		"char on int64":     {body: "%", letter: 'c', kind: KindInt64, want: "%d"},
		"string wins":       {body: "%", letter: 'x', kind: KindString, want: "%s"},
		"runes":             {body: "%", letter: 'S', kind: KindRunes, want: "%s"},
		"pointer prefixed":  {body: "%", letter: 'p', kind: KindPointer, want: "%#x"},
		"pointer width":     {body: "%8", letter: 'p', kind: KindPointer, want: "%#8x"},
		"pointer has hash":  {body: "%#", letter: 'p', kind: KindPointer, want: "%#x"},
		"star dropped":      {body: "%*", letter: 'd', kind: KindInt64, want: "%d"},
		"flags carried":     {body: "%-08", letter: 'd', kind: KindInt32, want: "%-08d"},
		"long stripped":     {body: "%l", letter: 'd', kind: KindInt64, want: "%d"},
		"short stripped":    {body: "%h", letter: 'd', kind: KindInt32, want: "%d"},
		"longlong stripped": {body: "%ll", letter: 'd', kind: KindInt64, want: "%d"},
		"wide stripped":     {body: "%w", letter: 'S', kind: KindRunes, want: "%s"},
		"width survives":    {body: "%4l", letter: 'd', kind: KindInt64, want: "%4d"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var scratch [tokenMax + 2]byte
			assert.Equal(t, tt.want, rewriteSpec(scratch[:], tt.body, tt.letter, tt.kind))
		})
	}
}

// --- Native fallback ---

func TestNativeAppendFits(t *testing.T) {
	t.Parallel()
	region := make([]byte, 8)
	n, ok := nativeAppend(region, "%d", 123)
	require.True(t, ok)
	assert.Equal(t, "123", string(region[:n]))
}

func TestNativeAppendTooSmall(t *testing.T) {
	t.Parallel()
	region := make([]byte, 2)
	_, ok := nativeAppend(region, "%d", 12345)
	assert.False(t, ok)
}

func TestCopyString(t *testing.T) {
	t.Parallel()
	region := make([]byte, 4)
	n, ok := copyString(region, "abc")
	require.True(t, ok)
	assert.Equal(t, "abc", string(region[:n]))
	_, ok = copyString(region, "abcde")
	assert.False(t, ok)
}

// --- Packing ---

func TestArgOfShapes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		kind Kind
	}{
		"string":  {in: "x", kind: KindString},
		"bytes":   {in: []byte("x"), kind: KindString},
		"runes":   {in: []rune("x"), kind: KindRunes},
		"int8":    {in: int8(1), kind: KindInt32},
		"int16":   {in: int16(1), kind: KindInt32},
		"int32":   {in: int32(1), kind: KindInt32},
		"int64":   {in: int64(1), kind: KindInt64},
		"uint8":   {in: uint8(1), kind: KindUint32},
		"uint32":  {in: uint32(1), kind: KindUint32},
		"uint64":  {in: uint64(1), kind: KindUint64},
		"uintptr": {in: uintptr(1), kind: KindPointer},
		"float32": {in: float32(1), kind: KindFloat},
		"float64": {in: float64(1), kind: KindFloat},
		"nil":     {in: nil, kind: KindPointer},
		"other":   {in: true, kind: KindString},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, argOf(tt.in).Kind)
		})
	}
}

func TestArgIntPlatformWidth(t *testing.T) {
	t.Parallel()
	want := KindInt64
	if strconv.IntSize == 32 {
		want = KindInt32
	}
	assert.Equal(t, want, argOf(7).Kind)
}

func TestPackEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, pack(nil))
}

// --- Dispatcher edges ---

func TestConvertCeilingDropsConversion(t *testing.T) {
	t.Parallel()
	// A handler that never fits exercises the size ceiling: that one
	// conversion is dropped, the rest of the template survives.
	never := func(dst []byte, arg Arg) (int, bool) { return 0, false }
	cx := Context{Escapeq: never}
	assert.Equal(t, "a b", cx.Format("a %qb", "x"))
}

func TestLiteralRunAcrossGrowth(t *testing.T) {
	t.Parallel()
	// A literal run longer than the scratch buffer must resume mid-run
	// without losing or repeating bytes.
	long := strings.Repeat("abc", 200)
	got := Append(make([]byte, 0, 7), long+"%d", 9)
	assert.Equal(t, long+"9", string(got))
}
