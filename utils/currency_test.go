package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{50000, "Rp 50,000"},
		{1250000, "Rp 1,250,000"},
		{-20000, "Rp -20,000"},
		{99999.6, "Rp 100,000"},
	}

	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Errorf("FormatRupiah(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
