package statement

import "strings"

// Header keywords per column role, matched as substrings of the lower-cased header.
var (
	dateKeywords   = []string{"date", "datum"}
	descKeywords   = []string{"description", "details", "omschrijving", "naam"}
	debitKeywords  = []string{"debit", "af", "withdrawal"}
	creditKeywords = []string{"credit", "bij", "deposit"}
	amountKeywords = []string{"amount", "bedrag"}
)

// columns holds the resolved index of each role, -1 when absent.
type columns struct {
	date   int
	desc   int
	debit  int
	credit int
	amount int
}

func resolveColumns(header []string) columns {
	return columns{
		date:   findColumn(header, dateKeywords),
		desc:   findColumn(header, descKeywords),
		debit:  findColumn(header, debitKeywords),
		credit: findColumn(header, creditKeywords),
		amount: findColumn(header, amountKeywords),
	}
}

// findColumn returns the first header index containing any keyword.
func findColumn(header []string, keywords []string) int {
	for i, h := range header {
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return i
			}
		}
	}
	return -1
}

func (c columns) hasRequired() bool {
	return c.date >= 0 && c.desc >= 0
}

func (c columns) hasSplitAmounts() bool {
	return c.debit >= 0 && c.credit >= 0
}

// minFields is the field count a row needs to reach both required columns.
func (c columns) minFields() int {
	return max(c.date, c.desc) + 1
}

func parseHeader(line string) []string {
	fields := splitFields(line)
	for i, f := range fields {
		fields[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return fields
}
