// Package chunk provides append-only numeric buffers that grow by
// fixed-size chunks. Appends never move previously written data, so the
// amortized cost stays O(1) regardless of how badly the caller's capacity
// hint underestimates the final size. Compact copies once into an
// exact-size slice when the build is done.
package chunk

// Chunk lengths are multiples of 3 so a 3-tuple never straddles two chunks.
const minChunkLen = 3 * 4096

func chunkLen(hint int) int {
	n := hint
	if n < minChunkLen {
		n = minChunkLen
	}
	return n - n%3
}

// Float32 is a growable chunked buffer of float32 values.
type Float32 struct {
	full [][]float32
	cur  []float32
	n    int
	clen int
}

// NewFloat32 creates a buffer. hint is the expected total value count and
// only sizes the chunks; the buffer grows past it freely.
func NewFloat32(hint int) *Float32 {
	cl := chunkLen(hint)
	return &Float32{cur: make([]float32, 0, cl), clen: cl}
}

func (b *Float32) grow() {
	b.full = append(b.full, b.cur)
	b.cur = make([]float32, 0, b.clen)
}

// Append appends a single value.
func (b *Float32) Append(v float32) {
	if len(b.cur) == cap(b.cur) {
		b.grow()
	}
	b.cur = append(b.cur, v)
	b.n++
}

// Append3 appends a 3-tuple.
func (b *Float32) Append3(x, y, z float32) {
	if len(b.cur)+3 > cap(b.cur) {
		b.grow()
	}
	b.cur = append(b.cur, x, y, z)
	b.n += 3
}

// Len returns the number of values appended so far.
func (b *Float32) Len() int { return b.n }

// Compact returns all appended values as one exact-size slice.
func (b *Float32) Compact() []float32 {
	return b.CompactInto(nil)
}

// CompactInto is Compact reusing dst's backing array when it is large
// enough. The buffer may not be appended to afterwards.
func (b *Float32) CompactInto(dst []float32) []float32 {
	if cap(dst) < b.n {
		dst = make([]float32, b.n)
	}
	dst = dst[:b.n]
	n := 0
	for _, c := range b.full {
		n += copy(dst[n:], c)
	}
	copy(dst[n:], b.cur)
	return dst
}

// Uint32 is a growable chunked buffer of uint32 values.
type Uint32 struct {
	full [][]uint32
	cur  []uint32
	n    int
	clen int
}

// NewUint32 creates a buffer with the given total value count hint.
func NewUint32(hint int) *Uint32 {
	cl := chunkLen(hint)
	return &Uint32{cur: make([]uint32, 0, cl), clen: cl}
}

func (b *Uint32) grow() {
	b.full = append(b.full, b.cur)
	b.cur = make([]uint32, 0, b.clen)
}

// Append appends a single value.
func (b *Uint32) Append(v uint32) {
	if len(b.cur) == cap(b.cur) {
		b.grow()
	}
	b.cur = append(b.cur, v)
	b.n++
}

// Append3 appends a 3-tuple.
func (b *Uint32) Append3(x, y, z uint32) {
	if len(b.cur)+3 > cap(b.cur) {
		b.grow()
	}
	b.cur = append(b.cur, x, y, z)
	b.n += 3
}

// Len returns the number of values appended so far.
func (b *Uint32) Len() int { return b.n }

// Compact returns all appended values as one exact-size slice.
func (b *Uint32) Compact() []uint32 {
	return b.CompactInto(nil)
}

// CompactInto is Compact reusing dst's backing array when it is large enough.
func (b *Uint32) CompactInto(dst []uint32) []uint32 {
	if cap(dst) < b.n {
		dst = make([]uint32, b.n)
	}
	dst = dst[:b.n]
	n := 0
	for _, c := range b.full {
		n += copy(dst[n:], c)
	}
	copy(dst[n:], b.cur)
	return dst
}
