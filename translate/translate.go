// Package translate renders user-facing text through a locale-aware printer.
package translate

import (
	"log"
	"strconv"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("uscc: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Value renders a register value without the printer's digit grouping,
// so 1023 stays "1023" in every locale.
func Value(value int) string {
	return strconv.Itoa(value)
}
