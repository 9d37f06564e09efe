package facility

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	t.Run("known distance", func(t *testing.T) {
		// 0.01 degree north-east in San Francisco.
		d := Distance(37.7749, -122.4194, 37.7849, -122.4094)
		if math.Abs(d-1.417) > 0.01 {
			t.Errorf("expected ~1.417 km, got %f", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		points := [][4]float64{
			{37.5665, 126.978, 35.1796, 129.0756},
			{-33.8688, 151.2093, 51.5074, -0.1278},
			{0, 179.9, 0, -179.9},
		}
		for _, p := range points {
			ab := Distance(p[0], p[1], p[2], p[3])
			ba := Distance(p[2], p[3], p[0], p[1])
			if math.Abs(ab-ba) > 1e-9 {
				t.Errorf("asymmetric distance for %v: %f vs %f", p, ab, ba)
			}
		}
	})

	t.Run("zero for same point", func(t *testing.T) {
		if d := Distance(48.8566, 2.3522, 48.8566, 2.3522); math.Abs(d) > 1e-9 {
			t.Errorf("expected 0, got %f", d)
		}
	})

	t.Run("antimeridian", func(t *testing.T) {
		if d := Distance(0, 179.9, 0, -179.9); d > 25 {
			t.Errorf("expected a short hop across the antimeridian, got %f", d)
		}
	})
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		lat, lng float64
		want     bool
	}{
		{0, 0, true},
		{90, 180, true},
		{-90, -180, true},
		{95, 0, false},
		{-90.1, 0, false},
		{0, 180.5, false},
		{math.NaN(), 0, false},
	}
	for _, tt := range tests {
		if got := ValidCoordinate(tt.lat, tt.lng); got != tt.want {
			t.Errorf("ValidCoordinate(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
		}
	}
}
