package present

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across machines.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with thousand separators and the given number
// of decimal places. Grouping is applied to the integer part only; the
// decimal part comes straight from fmt.
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	formatted := strconv.FormatFloat(f, 'f', precision, 64)
	intPart, decPart, _ := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}
	grouped := FormatNumber(n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	return grouped + "." + decPart
}

// FormatMoney formats an amount in EUR with two decimals.
func FormatMoney(amount float64) string {
	return "€" + FormatFloat(amount, 2)
}

// FormatYears formats a payback duration, rendering the unattainable
// sentinel as prose instead of "+Inf".
func FormatYears(years float64, unattainable bool) string {
	if unattainable || math.IsInf(years, 1) {
		return "never"
	}
	return fmt.Sprintf("%s years", FormatFloat(years, 1))
}
