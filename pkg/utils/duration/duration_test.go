package duration

import "testing"

func TestFormat_MinutesAndSeconds(t *testing.T) {
	result := Format("PT5M23S")

	if result != "5:23" {
		t.Errorf("Format(PT5M23S) = %s, want 5:23", result)
	}
}

func TestFormat_PadsSeconds(t *testing.T) {
	result := Format("PT5M3S")

	if result != "5:03" {
		t.Errorf("Format(PT5M3S) = %s, want 5:03", result)
	}
}

func TestFormat_WithHours(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT1H", "1:00:00"},
		{"PT2H30M", "2:30:00"},
	}

	for _, tt := range tests {
		if got := Format(tt.input); got != tt.want {
			t.Errorf("Format(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestFormat_SecondsOnly(t *testing.T) {
	result := Format("PT45S")

	if result != "0:45" {
		t.Errorf("Format(PT45S) = %s, want 0:45", result)
	}
}

func TestFormat_EmptyInput(t *testing.T) {
	if Format("") != "" {
		t.Error("Format should return empty string for empty input")
	}
}

func TestFormat_UnparseableInput(t *testing.T) {
	inputs := []string{"5:23", "five minutes", "P1D", "PT5X"}

	for _, input := range inputs {
		if got := Format(input); got != "" {
			t.Errorf("Format(%s) = %s, want empty string", input, got)
		}
	}
}

func TestTotalSeconds(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"PT1M", 60},
		{"PT1M1S", 61},
		{"PT1H", 3600},
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
	}

	for _, tt := range tests {
		got, ok := TotalSeconds(tt.input)
		if !ok {
			t.Errorf("TotalSeconds(%s) reported unparseable", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("TotalSeconds(%s) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTotalSeconds_Unparseable(t *testing.T) {
	_, ok := TotalSeconds("not a duration")

	if ok {
		t.Error("TotalSeconds should report unparseable input")
	}
}

func TestIsShortForm_AtBoundary(t *testing.T) {
	if !IsShortForm("PT1M") {
		t.Error("IsShortForm(PT1M) should be true for exactly 60 seconds")
	}

	if IsShortForm("PT1M1S") {
		t.Error("IsShortForm(PT1M1S) should be false for 61 seconds")
	}
}

func TestIsShortForm_Short(t *testing.T) {
	if !IsShortForm("PT30S") {
		t.Error("IsShortForm(PT30S) should be true")
	}
}

func TestIsShortForm_Long(t *testing.T) {
	if IsShortForm("PT5M23S") {
		t.Error("IsShortForm(PT5M23S) should be false")
	}
}

func TestIsShortForm_UnparseableDefaultsToLongForm(t *testing.T) {
	if IsShortForm("garbage") {
		t.Error("IsShortForm should classify unparseable input as long-form")
	}
}
