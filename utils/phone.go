// utils/phone.go
package utils

import "strings"

var phoneCleaner = strings.NewReplacer("+", "", "-", "", " ", "", "(", "", ")", "")

// NormalizePhone converts a stored phone number into the digits-only form
// that wa.me and Twilio expect. Local Indonesian numbers with a leading
// zero are rewritten with the 62 country code.
func NormalizePhone(phone string) string {
	cleaned := phoneCleaner.Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(cleaned, "0") {
		cleaned = "62" + cleaned[1:]
	}
	return cleaned
}
