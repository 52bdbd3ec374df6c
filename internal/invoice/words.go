package invoice

import (
	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// toWords spells out n using the Indian numbering scale
// (hundred, thousand, lakh, crore). Returns "" for zero.
func toWords(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		s := tensWords[n/10]
		if n%10 != 0 {
			s += " " + onesWords[n%10]
		}
		return s
	case n < 1000:
		s := onesWords[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + toWords(n%100)
		}
		return s
	case n < 100000:
		s := toWords(n/1000) + " Thousand"
		if n%1000 != 0 {
			s += " " + toWords(n%1000)
		}
		return s
	case n < 10000000:
		s := toWords(n/100000) + " Lakh"
		if n%100000 != 0 {
			s += " " + toWords(n%100000)
		}
		return s
	default:
		s := toWords(n/10000000) + " Crore"
		if n%10000000 != 0 {
			s += " " + toWords(n%10000000)
		}
		return s
	}
}

// AmountInWords renders a non-negative amount as spelled-out rupees and
// paise: "<Rupees> Rupees Only", or "<Rupees> Rupees and <Paise> Paise
// Only" when the paise part is non-zero. Zero yields "Zero Rupees Only".
func AmountInWords(amount decimal.Decimal) string {
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	rupeeWords := toWords(rupees)
	if rupeeWords == "" {
		rupeeWords = "Zero"
	}
	if paise == 0 {
		return rupeeWords + " Rupees Only"
	}
	return rupeeWords + " Rupees and " + toWords(paise) + " Paise Only"
}
