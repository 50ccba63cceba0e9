package parse

import "testing"

func TestIntOrZero(t *testing.T) {
	if IntOrZero("42") != 42 {
		t.Error("IntOrZero should parse a valid integer")
	}

	if IntOrZero("abc") != 0 {
		t.Error("IntOrZero should return 0 for invalid input")
	}

	if IntOrZero("") != 0 {
		t.Error("IntOrZero should return 0 for empty input")
	}
}

func TestIntOrDefault(t *testing.T) {
	if IntOrDefault("7", 6) != 7 {
		t.Error("IntOrDefault should parse a valid integer")
	}

	if IntOrDefault("", 6) != 6 {
		t.Error("IntOrDefault should return default for empty input")
	}

	if IntOrDefault("junk", 6) != 6 {
		t.Error("IntOrDefault should return default for invalid input")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want int
	}{
		{5, 1, 12, 5},
		{0, 1, 12, 1},
		{20, 1, 12, 12},
		{-3, 1, 50, 1},
		{50, 1, 50, 50},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}
