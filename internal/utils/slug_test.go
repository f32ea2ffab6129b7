package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Center Court", "center-court"},
		{"Lapangan Badminton #2", "lapangan-badminton-2"},
		{"  padded  ", "padded"},
		{"UPPER", "upper"},
		{"multi   space", "multi-space"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
