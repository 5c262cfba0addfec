// Package money renders integer amounts as locale-aware currency strings.
package money

import (
	"errors"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidCurrency = errors.New("invalid currency code")

// supported is the closed set of currencies the settings UI offers. Codes
// outside this table are rejected even when they parse as valid ISO 4217.
var supported = []string{"USD", "EUR", "GBP", "JPY", "KRW"}

// Supported returns the currency codes users may pick in their settings.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)

	return out
}

// Formatter renders amounts for a single currency. Stateless after
// construction and safe for concurrent use.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// New builds a formatter for the given ISO 4217 code.
// Returns ErrInvalidCurrency for unknown or unsupported codes.
func New(code string) (*Formatter, error) {
	ok := false

	for _, c := range supported {
		if c == code {
			ok = true
			break
		}
	}

	if !ok {
		return nil, ErrInvalidCurrency
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, ErrInvalidCurrency
	}

	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Format renders an amount in whole currency units, symbol included.
func (f *Formatter) Format(amount int64) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(amount)))
}

// Code returns the ISO code this formatter was built for.
func (f *Formatter) Code() string {
	return f.unit.String()
}

// Cache memoizes formatters by currency code. Construction is cheap but
// happens on every render without it.
type Cache struct {
	mu     sync.Mutex
	byCode map[string]*Formatter
}

func NewCache() *Cache {
	return &Cache{byCode: make(map[string]*Formatter)}
}

// FormatterFor returns the memoized formatter for code, building it on first
// use. Returns ErrInvalidCurrency for unknown codes.
func (c *Cache) FormatterFor(code string) (*Formatter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.byCode[code]; ok {
		return f, nil
	}

	f, err := New(code)
	if err != nil {
		return nil, err
	}

	c.byCode[code] = f

	return f, nil
}
