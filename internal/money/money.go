package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Symbols for the currencies the shop actually trades in. Valid ISO codes
// outside this table render as "<CODE> <amount>".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"TRY": "₺",
}

// Format renders an amount for display. Unrecognized currency codes fall
// back to a plain two-decimal amount followed by the code.
func Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount.StringFixed(2) + " " + strings.ToUpper(code)
	}
	iso := unit.String()
	if sym, ok := symbols[iso]; ok {
		return sym + amount.StringFixed(2)
	}
	return iso + " " + amount.StringFixed(2)
}
