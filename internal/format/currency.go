// Package format renders donation amounts for display.
package format

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Defaults match the Sri Lankan rupee display used on the kiosk.
const (
	DefaultLocale   = "en-LK"
	DefaultCurrency = "LKR"
	DefaultSymbol   = "Rs."
)

// Formatter renders whole currency amounts with locale digit grouping
// and no fractional part.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
}

// New builds a Formatter for the given BCP 47 locale and ISO 4217 code.
// An empty symbol falls back to the currency code.
func New(locale, code, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parsing currency %q: %w", code, err)
	}
	if symbol == "" {
		symbol = unit.String()
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
		symbol:  symbol,
	}, nil
}

// Default returns the en-LK rupee formatter.
func Default() *Formatter {
	f, err := New(DefaultLocale, DefaultCurrency, DefaultSymbol)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders amount, e.g. 5240000 as "Rs. 5,240,000".
func (f *Formatter) Format(amount int64) string {
	return f.symbol + " " + f.printer.Sprintf("%d", amount)
}

// Currency returns the ISO code this formatter renders.
func (f *Formatter) Currency() string {
	return f.unit.String()
}
