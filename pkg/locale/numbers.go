package locale

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Numbers formats numbers with the grouping and decimal symbols of a language.
type Numbers struct {
	tag      language.Tag
	printers sync.Pool
}

// NewNumbers creates a number formatter for tag.
func NewNumbers(tag language.Tag) *Numbers {
	n := &Numbers{tag: tag}
	n.printers.New = func() any {
		return message.NewPrinter(tag)
	}
	return n
}

// Tag returns the language the formatter was created for.
func (n *Numbers) Tag() language.Tag {
	return n.tag
}

// FormatNumber renders value with exactly decimals fraction digits, rounding half to
// even. Negative decimals are treated as zero.
func (n *Numbers) FormatNumber(value float64, decimals int) string {
	decimals = max(decimals, 0)

	p := n.printers.Get().(*message.Printer)
	defer n.printers.Put(p)

	return p.Sprint(number.Decimal(value, number.Scale(decimals)))
}
