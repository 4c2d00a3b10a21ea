package view

import (
	"strconv"
	"strings"

	"duit/internal/model"
)

// FormatRupiah renders an amount the way the backend's locale does:
// "Rp 1.234.567". Amounts are whole rupiah; there is no fractional part.
func FormatRupiah(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	digits := strconv.FormatInt(v, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("Rp ")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// FormatFlow prefixes an amount with its cash-flow sign.
func FormatFlow(typ model.TransactionType, v int64) string {
	if typ == model.TypeIncome {
		return "+" + FormatRupiah(v)
	}
	return "-" + FormatRupiah(v)
}
