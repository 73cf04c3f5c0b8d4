package tfmt

// Worst-case byte counts for the fast integer conversions, sign included.
const (
	maxDec32 = 11 // -2147483648
	maxHex32 = 8  // ffffffff
	maxDec64 = 20 // -9223372036854775808
	maxHex64 = 16 // ffffffffffffffff
)

// One reverse-index digit table per case, centered on '0' at index 35.
// Indexing at 35+remainder makes negative remainders from truncated signed
// division land on the right digit without a separate abs pass.
const (
	digitsLower = "zyxwvutsrqponmlkjihgfedcba9876543210123456789abcdefghijklmnopqrstuvwxyz"
	digitsUpper = "ZYXWVUTSRQPONMLKJIHGFEDCBA9876543210123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// appendInt writes the minimal representation of v in base (10..36) into
// dst and returns the byte count: no leading zeros, '-' only for negative
// values, never '+'. dst must hold the worst case for v's width and base.
func appendInt(dst []byte, v int64, base int64, upper bool) int {
	lut := digitsLower
	if upper {
		lut = digitsUpper
	}
	var tmp [maxDec64 + 1]byte
	i := 0
	var last int64
	for {
		last = v
		v /= base
		tmp[i] = lut[35+(last-v*base)]
		i++
		if v == 0 {
			break
		}
	}
	if last < 0 {
		tmp[i] = '-'
		i++
	}
	for j := 0; j < i; j++ {
		dst[j] = tmp[i-1-j]
	}
	return i
}

// appendUint is appendInt for the full unsigned domain.
func appendUint(dst []byte, v uint64, base uint64, upper bool) int {
	lut := digitsLower
	if upper {
		lut = digitsUpper
	}
	var tmp [maxDec64]byte
	i := 0
	for {
		last := v
		v /= base
		tmp[i] = lut[35+(last-v*base)]
		i++
		if v == 0 {
			break
		}
	}
	for j := 0; j < i; j++ {
		dst[j] = tmp[i-1-j]
	}
	return i
}
