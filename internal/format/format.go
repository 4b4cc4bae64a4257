// Package format renders money, account numbers and timestamps for display.
// Money is kept as satang (int64) everywhere; formatting is the only place
// values become strings.
package format

import (
	"fmt"
	"strings"
	"time"
)

// THB renders a satang amount as Thai baht, e.g. 123456 -> "฿1,234.56".
// Negative amounts (credit balances) carry a leading minus sign.
func THB(satang int64) string {
	sign := ""
	if satang < 0 {
		sign = "-"
		satang = -satang
	}
	baht := satang / 100
	sat := satang % 100
	return fmt.Sprintf("%s฿%s.%02d", sign, groupDigits(baht), sat)
}

// groupDigits inserts thousands separators into a non-negative integer.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// AccountNumber renders a plain 10-digit account number in its display
// form, e.g. "1234567890" -> "123-4-56789-0". Inputs of other lengths are
// returned unchanged.
func AccountNumber(plain string) string {
	if len(plain) != 10 {
		return plain
	}
	return fmt.Sprintf("%s-%s-%s-%s", plain[0:3], plain[3:4], plain[4:9], plain[9:10])
}

// PlainAccountNumber strips display separators, returning only the digits.
func PlainAccountNumber(display string) string {
	var b strings.Builder
	for _, c := range display {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Timestamp renders a transaction time in the local timezone for history
// listings and receipts.
func Timestamp(at time.Time) string {
	return at.Local().Format("2 Jan 2006 15:04")
}
