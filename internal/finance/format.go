package finance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofinances/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// monthNames are the pt-BR month names. x/text carries no calendar data.
var monthNames = [...]string{
	"janeiro",
	"fevereiro",
	"março",
	"abril",
	"maio",
	"junho",
	"julho",
	"agosto",
	"setembro",
	"outubro",
	"novembro",
	"dezembro",
}

const (
	currencySymbol   = "R$"
	decimalSeparator = ","
	groupSeparator   = "."
)

// Formatter renders amounts and dates for display in Brazilian Portuguese.
//
// All dates are converted to the formatter's location before any calendar
// value (day, month, year) is read from them.
type Formatter struct {
	location *time.Location
	printer  *message.Printer
}

// NewFormatter returns a pt-BR formatter for dates in location loc.
// A nil location means UTC.
func NewFormatter(loc *time.Location) Formatter {
	if loc == nil {
		loc = time.UTC
	}

	return Formatter{
		location: loc,
		printer:  message.NewPrinter(language.BrazilianPortuguese),
	}
}

// Location returns the location dates are evaluated in.
func (f Formatter) Location() *time.Location {
	if f.location == nil {
		return time.UTC
	}
	return f.location
}

// Currency formats the amount as BRL, e.g. "R$ 1.234,56" or "-R$ 40,00".
// The amount is rounded half away from zero to cents.
func (f Formatter) Currency(d decimal.Decimal) string {
	p := f.printer
	if p == nil {
		p = message.NewPrinter(language.BrazilianPortuguese)
	}

	d = d.Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	whole, cents, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	return fmt.Sprintf("%s%s %s%s%s", sign, currencySymbol, integer(p, whole), decimalSeparator, cents)
}

// integer formats the digits of a non-negative integer with the grouping
// of the printer's locale. Digits beyond int64 are grouped three at a time.
func integer(p *message.Printer, digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return p.Sprint(number.Decimal(n))
	}

	cut := len(digits) - 3
	return integer(p, digits[:cut]) + groupSeparator + digits[cut:]
}

// Date formats the date as DD/MM/YY.
func (f Formatter) Date(t time.Time) string {
	return t.In(f.Location()).Format("02/01/06")
}

// DayOfMonth formats the date as "<day> de <month name>", e.g. "5 de março".
func (f Formatter) DayOfMonth(t time.Time) string {
	t = t.In(f.Location())
	return fmt.Sprintf("%d de %s", t.Day(), monthNames[t.Month()-1])
}

// MonthLabel formats the month as "<month name>, <year>", e.g. "março, 2024".
func (f Formatter) MonthLabel(m types.Month) string {
	return fmt.Sprintf("%s, %d", monthNames[m.Month()-1], m.Year())
}

// MonthOf returns the month t falls in, in the formatter's location.
func (f Formatter) MonthOf(t time.Time) types.Month {
	return types.MonthOf(t.In(f.Location()))
}
