package uview

// Builder accumulates a chain of views and renders them with a single
// allocation sized to the sum of their lengths, the same "size then write
// once" discipline QStringBuilder uses to avoid per-concatenation temporary
// QStrings. It mirrors the teacher's own strings.Builder (buf []byte,
// WriteString/Len/String/Reset) generalized to 16-bit code units, since the
// library's primary currency is UTF-16 rather than bytes.
type Builder struct {
	parts [][]uint16
	size  int
}

// WriteView appends v to the builder without copying it yet.
func (b *Builder) WriteView(v StringView) {
	b.parts = append(b.parts, v.Data)
	b.size += len(v.Data)
}

// WriteLatin1 appends a Latin-1 view, zero-extending each byte.
func (b *Builder) WriteLatin1(v Latin1View) {
	units := make([]uint16, len(v.Data))
	for i, c := range v.Data {
		units[i] = uint16(c)
	}
	b.parts = append(b.parts, units)
	b.size += len(units)
}

// Len reports the total code-unit length accumulated so far.
func (b *Builder) Len() int { return b.size }

// Build renders every appended part into one freshly allocated slice.
func (b *Builder) Build() []uint16 {
	out := make([]uint16, 0, b.size)
	for _, p := range b.parts {
		out = append(out, p...)
	}
	return out
}

// Reset discards all accumulated parts.
func (b *Builder) Reset() {
	b.parts = nil
	b.size = 0
}
