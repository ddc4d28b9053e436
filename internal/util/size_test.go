package util

import (
	"testing"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "Unknown"},
		{"whitespace only", "   ", "Unknown"},
		{"plain byte count", "536870912", "512 MiB"},
		{"one kibibyte", "1024", "1.0 KiB"},
		{"zero bytes", "0", "0 B"},
		{"already humanized", "476.9G", "476.9G"},
		{"non numeric", "banana", "banana"},
		{"surrounding whitespace", " 1024 ", "1.0 KiB"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatSize(tc.in)
			if got != tc.want {
				t.Errorf("FormatSize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
