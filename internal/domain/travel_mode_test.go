package domain

import "testing"

func TestParseTravelMode(t *testing.T) {
	for _, s := range []string{"driving", "transit", "bicycle", "walking"} {
		mode, err := ParseTravelMode(s)
		if err != nil {
			t.Fatalf("ParseTravelMode(%q): %v", s, err)
		}
		if string(mode) != s {
			t.Fatalf("ParseTravelMode(%q) = %q", s, mode)
		}
	}

	if _, err := ParseTravelMode("hovercraft"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if _, err := ParseTravelMode(""); err == nil {
		t.Fatal("expected error for empty mode")
	}
}

func TestRequestValue(t *testing.T) {
	if got := ModeBicycle.RequestValue(); got != "bicycling" {
		t.Fatalf("bicycle request value = %q, want bicycling", got)
	}
	if got := ModeDriving.RequestValue(); got != "driving" {
		t.Fatalf("driving request value = %q", got)
	}
}
