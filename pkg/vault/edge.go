package vault

import (
	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// EdgeRecord is one row of a Microsoft Edge password export.
type EdgeRecord struct {
	Name     string
	URL      string
	Username string
	Password string
}

var edgeHeader = []string{"name", "url", "username", "password"}

// GenerateEdge builds count flat login records.
func GenerateEdge(r *randutil.Rand, loc *locale.Locale, pw *password.Generator, opts *Options) []*EdgeRecord {
	urls := newURLPicker(r, loc, opts)
	records := make([]*EdgeRecord, 0, opts.LoginCount)
	for i := 0; i < opts.LoginCount; i++ {
		site := urls.pick()
		records = append(records, &EdgeRecord{
			Name:     siteName(site),
			URL:      site,
			Username: loc.Email(r),
			Password: pw.Password(),
		})
	}
	return records
}

// SerializeEdge renders fully double-quoted CSV, matching Edge's exporter.
func SerializeEdge(records []*EdgeRecord) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Name, rec.URL, rec.Username, rec.Password})
	}
	return joinQuotedCSV(edgeHeader, rows)
}
