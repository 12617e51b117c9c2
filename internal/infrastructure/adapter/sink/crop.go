package sink

// MaxMessageLen is the longest message a line-formatting sink will emit.
const MaxMessageLen = 500

// crop returns s truncated to at most max runes. Cropping never over-reads:
// a string already within the limit is returned unchanged, and truncation
// happens on a rune boundary.
func crop(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for pos := range s {
		if n == max {
			return s[:pos]
		}
		n++
	}
	return s
}
