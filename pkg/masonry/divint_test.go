package masonry

import (
	"math"
	"testing"
)

func TestDivIntRoundsHalfUp(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
		want uint32
	}{
		{"Exact", 10, 5, 2},
		{"RoundsDown", 4, 3, 1},
		{"RoundsUp", 5, 3, 2},
		{"HalfRoundsUp", 7, 2, 4},
		{"ZeroNumerator", 0, 7, 0},
		{"ByOne", 99, 1, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := divInt(tt.a, tt.b); got != tt.want {
				t.Errorf("divInt(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDivIntSaturates(t *testing.T) {
	// Numerator addition that would wrap must saturate at the type maximum
	// instead, so the result is MaxUint32/b rather than a tiny wrapped value.
	got := divInt(uint32(math.MaxUint32-1), 8)
	if want := uint32(math.MaxUint32 / 8); got != want {
		t.Errorf("divInt(MaxUint32-1, 8) = %d, want %d", got, want)
	}
}

func TestDivIntUint16Saturates(t *testing.T) {
	got := divInt(uint16(math.MaxUint16), 2)
	if want := uint16(math.MaxUint16 / 2); got != want {
		t.Errorf("divInt(MaxUint16, 2) = %d, want %d", got, want)
	}
}
