package cli

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := map[int]string{
		0:       "0 B",
		512:     "512 B",
		12345:   "12 kB",
		1 << 20: "1.0 MB",
		-5:      "0 B",
	}
	for in, want := range tests {
		if got := FormatBytes(in); got != want {
			t.Errorf("FormatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
