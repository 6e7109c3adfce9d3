package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var vnd = currency.MustParseISO("VND")

// CurrencyFormatter renders amounts with the locale's digit grouping and an ISO code.
type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewCurrencyFormatter parses a BCP 47 locale and an ISO 4217 code.
// Bad input falls back to Vietnamese / VND, the marketplace defaults.
func NewCurrencyFormatter(locale, code string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Vietnamese
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = vnd
	}
	return &CurrencyFormatter{printer: message.NewPrinter(tag), unit: unit}
}

// Format rounds to whole units, e.g. "1.500.000 VND" for vi.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprintf("%d %s", amount.Round(0).IntPart(), f.unit.String())
}
