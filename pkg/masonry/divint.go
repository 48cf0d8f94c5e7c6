package masonry

// unsigned covers the integer widths used by placements.
type unsigned interface {
	~uint16 | ~uint32
}

// divInt divides a by b, rounding half up instead of truncating toward zero.
// The intermediate sum saturates at the type's maximum rather than wrapping.
// Truncating division accumulates visible downward drift across many rows or
// columns; rounding keeps the cumulative layout error near zero.
//
// b must be non-zero. Every caller establishes this before use: column counts
// and row widths are clamped to at least one item, and normalized aspect
// ratio components are bounded away from zero.
func divInt[T unsigned](a, b T) T {
	sum := a + b>>1
	if sum < a {
		sum = ^T(0)
	}
	return sum / b
}
