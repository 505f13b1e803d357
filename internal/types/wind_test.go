package types

import (
	"math"
	"testing"
)

func TestClassifyDirection(t *testing.T) {
	tests := []struct {
		name     string
		degrees  float64
		expected CompassDirection
	}{
		{"zero", 0, North},
		{"just below first edge", 22.49, North},
		{"first edge inclusive", 22.5, NorthEast},
		{"north-east", 45, NorthEast},
		{"east edge", 67.5, East},
		{"east", 90, East},
		{"south-east edge", 112.5, SouthEast},
		{"south-east", 135, SouthEast},
		{"south edge", 157.5, South},
		{"south", 200, South},
		{"south-west edge", 202.5, SouthWest},
		{"south-west", 225, SouthWest},
		{"west edge", 247.5, West},
		{"west", 270, West},
		{"north-west edge", 292.5, NorthWest},
		{"north-west last", 337.49, NorthWest},
		{"gap start folds to north", 337.5, North},
		{"gap", 350, North},
		{"full circle", 360, North},
		{"above full circle", 725, North},
		{"negative", -10, North},
		{"small negative", -0.001, North},
		{"NaN", math.NaN(), North},
		{"positive infinity", math.Inf(1), North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyDirection(tt.degrees)
			if result != tt.expected {
				t.Errorf("ClassifyDirection(%v) = %q, want %q", tt.degrees, result, tt.expected)
			}
		})
	}
}

func TestClassifyDirection_EveryDegreeHasOneLabel(t *testing.T) {
	valid := map[CompassDirection]bool{
		North: true, NorthEast: true, East: true, SouthEast: true,
		South: true, SouthWest: true, West: true, NorthWest: true,
	}

	seen := make(map[CompassDirection]int)
	for d := 0.0; d < 360; d += 0.25 {
		got := ClassifyDirection(d)
		if !valid[got] {
			t.Fatalf("ClassifyDirection(%v) = %q, not a compass label", d, got)
		}
		seen[got]++
	}

	if len(seen) != len(valid) {
		t.Errorf("saw %d distinct labels, want %d", len(seen), len(valid))
	}
}

func TestNewWindFromMps(t *testing.T) {
	tests := []struct {
		name      string
		speed     float64
		degrees   float64
		wantKph   float64
		wantLabel CompassDirection
	}{
		{"ten metres per second", 10, 0, 36.00, North},
		{"five metres per second", 5, 200, 18.00, South},
		{"calm", 0, 90, 0, East},
		{"rounded", 3.33, 300, 11.99, NorthWest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindFromMps(tt.speed, 0, tt.degrees)
			if w.SpeedInKph != tt.wantKph {
				t.Errorf("SpeedInKph = %v, want %v", w.SpeedInKph, tt.wantKph)
			}
			if w.Direction != tt.wantLabel {
				t.Errorf("Direction = %q, want %q", w.Direction, tt.wantLabel)
			}
			if w.DirectionDegrees != tt.degrees {
				t.Errorf("DirectionDegrees = %v, want %v", w.DirectionDegrees, tt.degrees)
			}
		})
	}
}
