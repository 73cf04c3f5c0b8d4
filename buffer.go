package tfmt

// outbuf is an append-only byte buffer seeded from a caller-supplied
// region. It grows geometrically into an owned allocation the first time
// the region is outgrown; the borrowed-to-owned transition never reverses
// within a call.
type outbuf struct {
	buf   []byte
	pos   int
	owned bool
}

func (b *outbuf) remaining() int { return len(b.buf) - b.pos }

// reserve guarantees room for n more bytes, preserving everything written
// so far. Growth is at least 2x and at least the request.
func (b *outbuf) reserve(n int) {
	if b.pos+n <= len(b.buf) {
		return
	}
	ncap := 2 * len(b.buf)
	if ncap < b.pos+n {
		ncap = b.pos + n
	}
	nbuf := make([]byte, ncap)
	copy(nbuf, b.buf[:b.pos])
	b.buf = nbuf
	b.owned = true
}

func (b *outbuf) add(c byte) {
	b.reserve(1)
	b.buf[b.pos] = c
	b.pos++
}

// take reserves n bytes and advances the write position immediately.
// Speculative writers fill (part of) the region and give the surplus back
// with unwind.
func (b *outbuf) take(n int) []byte {
	b.reserve(n)
	p := b.buf[b.pos : b.pos+n]
	b.pos += n
	return p
}

// unwind moves the write position back over the last n taken bytes.
func (b *outbuf) unwind(n int) { b.pos -= n }

func (b *outbuf) bytes() []byte { return b.buf[:b.pos] }
