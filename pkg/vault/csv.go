package vault

import (
	"strings"
)

// The CSV writers below are deliberately hand-rolled. Each target format
// has its own quoting discipline, and that discipline is the compatibility
// surface importers parse against: LastPass emits bare fields, Edge and
// KeePassX double-quote everything, Password Depot uses semicolons with no
// quoting. A generic CSV encoder would normalize exactly the quirks this
// tool exists to reproduce.

// joinBareCSV renders rows with comma separators and no quoting at all.
func joinBareCSV(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// joinQuotedCSV double-quotes every field, doubling interior quotes.
func joinQuotedCSV(header []string, rows [][]string) string {
	quote := func(fields []string) string {
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		return strings.Join(quoted, ",")
	}
	var b strings.Builder
	b.WriteString(quote(header))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(quote(row))
	}
	return b.String()
}

// joinSemicolonCSV renders rows with semicolon separators and no quoting.
func joinSemicolonCSV(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ";"))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ";"))
	}
	return b.String()
}

// siteName derives a display name from a URL: "https://www.github.com"
// becomes "github".
func siteName(site string) string {
	name := site
	if idx := strings.Index(name, "://"); idx >= 0 {
		name = name[idx+3:]
	}
	name = strings.TrimPrefix(name, "www.")
	if idx := strings.IndexAny(name, "./"); idx >= 0 {
		name = name[:idx]
	}
	if name == "" {
		return site
	}
	return name
}
