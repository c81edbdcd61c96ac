package sortdemo

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCount renders n with thousands separators, e.g. 1234567 as
// "1,234,567".
func FormatCount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
