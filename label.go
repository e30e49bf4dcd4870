package geomcore

// LabelCap is the fixed capacity of a Label, including the terminator
// byte; anything longer is truncated on Set.
const LabelCap = 64

// Label is a fixed-capacity name for entities, groups, and requests. It is
// a plain value (no heap allocation), so it can live inside elements of an
// ordered handle store and be bulk-copied with them.
type Label struct {
	str [LabelCap]byte
}

// NewLabel returns a Label holding s, truncated to fit.
func NewLabel(s string) Label {
	var l Label
	l.Set(s)
	return l
}

// Set replaces the label text with s, truncating to LabelCap-1 bytes.
func (l *Label) Set(s string) {
	n := copy(l.str[:LabelCap-1], s)
	for i := n; i < LabelCap; i++ {
		l.str[i] = 0
	}
}

// String returns the label text.
func (l *Label) String() string {
	n := 0
	for n < LabelCap && l.str[n] != 0 {
		n++
	}
	return string(l.str[:n])
}

// Equals reports whether two labels hold the same text.
func (l *Label) Equals(b *Label) bool {
	return l.str == b.str
}
