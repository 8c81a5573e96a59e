package dialect

import (
	"strings"
	"unicode"
)

// KeyTransform renames one mapping key of a structured device reply into
// the canonical naming convention. Transforms must be idempotent: applying
// one to an already-canonical key is a no-op, because a device may echo
// back data already in canonical casing for some fields.
type KeyTransform func(key string) string

// SnakeCaseKeys converts a camelCase key to snake_case: an underscore is
// inserted before every non-initial uppercase letter and the result is
// lowercased. Keys containing "/" are converted segment by segment so path
// separators survive untouched (MOS replies key some tables by paths like
// "ap1/1"). snake_case input is returned unchanged.
func SnakeCaseKeys(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = snakeSegment(seg)
	}
	return strings.Join(segments, "/")
}

func snakeSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
