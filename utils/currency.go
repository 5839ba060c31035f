// utils/currency.go
package utils

import (
	"math"
	"strconv"
)

// FormatRupiah renders an amount as "Rp 1,250,000". Amounts are rounded to
// whole rupiah; negative amounts (overpayment) keep their sign.
func FormatRupiah(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	return "Rp " + sign + string(out)
}
