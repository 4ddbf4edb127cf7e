package theme

import "unicode/utf16"

// javaStringHash is java.lang.String#hashCode: s[0]*31^(n-1) + ... + s[n-1]
// over UTF-16 code units with 32-bit wraparound. Package names hash the same
// here as on the device, so a given app keeps its polychrome tint.
func javaStringHash(s string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(unit)
	}
	return h
}

// PaletteIndex picks a stable index in [0, n) for an app package.
func PaletteIndex(pkg string, n int) int {
	if n <= 0 {
		return 0
	}
	// Widened before abs so a hash of math.MinInt32 stays non-negative.
	h := int64(javaStringHash(pkg))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}
