// Package words renders monetary amounts as Indian-English words using
// the lakh/crore grouping system.
package words

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// NumberToWords converts an amount to words. The amount is rounded to
// two decimals; the integer part is spoken in rupees with Indian
// grouping (hundreds, then 2-digit thousands, 2-digit lakhs, recursive
// crores) and any remaining paise are appended as "and <n> Paise".
//
//	NumberToWords(8640)   // "Eight Thousand Six Hundred Forty"
//	NumberToWords(123456) // "One Lakh Twenty Three Thousand Four Hundred Fifty Six"
func NumberToWords(amount float64) string {
	if amount == 0 {
		return "Zero"
	}
	if amount < 0 {
		return "Minus " + NumberToWords(-amount)
	}

	rounded := math.Round(amount*100) / 100
	rupees := int64(math.Floor(rounded))
	paise := int64(math.Round((rounded - float64(rupees)) * 100))

	var b strings.Builder
	b.WriteString(indianWords(rupees))

	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(underHundred(paise))
		b.WriteString(" Paise")
	}

	return b.String()
}

// AmountInWords produces the chargeable-amount line for the invoice.
//
//	AmountInWords(8640) // "INR Eight Thousand Six Hundred Forty Only"
func AmountInWords(amount float64) string {
	if amount == 0 {
		return "INR Zero Only"
	}
	return "INR " + NumberToWords(amount) + " Only"
}

func underHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

func underThousand(n int64) string {
	if n < 100 {
		return underHundred(n)
	}
	if n%100 == 0 {
		return ones[n/100] + " Hundred"
	}
	return ones[n/100] + " Hundred " + underHundred(n%100)
}

// indianWords speaks n using lakh/crore grouping: the low three digits
// as hundreds, then two-digit thousand and lakh groups, then crores
// recursively.
func indianWords(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 1000:
		return underThousand(n)
	case n < 100000:
		s := underHundred(n/1000) + " Thousand"
		if rem := n % 1000; rem != 0 {
			s += " " + underThousand(rem)
		}
		return s
	case n < 10000000:
		s := underHundred(n/100000) + " Lakh"
		if rem := n % 100000; rem != 0 {
			s += " " + indianWords(rem)
		}
		return s
	default:
		s := indianWords(n/10000000) + " Crore"
		if rem := n % 10000000; rem != 0 {
			s += " " + indianWords(rem)
		}
		return s
	}
}
