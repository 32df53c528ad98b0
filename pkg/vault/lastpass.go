package vault

import (
	"strings"

	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// LastPassRecord is one row of a LastPass CSV export.
type LastPassRecord struct {
	URL      string
	Username string
	Password string
	Extra    string // notes column
	Name     string
	Grouping string
	TOTP     string
}

var lastPassHeader = []string{"url", "username", "password", "extra", "name", "grouping", "totp"}

var lastPassGroups = []string{"", "Personal", "Work", "Finance", "Shopping"}

const lastPassTOTPChancePct = 40

// GenerateLastPass builds count flat login records.
func GenerateLastPass(r *randutil.Rand, loc *locale.Locale, pw *password.Generator, opts *Options) []*LastPassRecord {
	urls := newURLPicker(r, loc, opts)
	records := make([]*LastPassRecord, 0, opts.LoginCount)
	for i := 0; i < opts.LoginCount; i++ {
		site := urls.pick()
		rec := &LastPassRecord{
			URL:      site,
			Username: loc.Email(r),
			Password: pw.Password(),
			Extra:    loc.Note(r),
			Name:     siteName(site),
			Grouping: randutil.Pick(r, lastPassGroups),
		}
		if r.Chance(lastPassTOTPChancePct) {
			rec.TOTP = password.TOTPURI(rec.Name, rec.Username, password.TOTPSecret(r))
		}
		records = append(records, rec)
	}
	return records
}

// SerializeLastPass renders bare, unquoted CSV: LastPass's own exporter
// does not quote fields, and importers tolerate that. Field content is
// stripped of delimiters so rows keep exactly seven columns; Mr Blobby is
// the only thing allowed to break that.
func SerializeLastPass(records []*LastPassRecord) string {
	clean := func(s string) string {
		s = strings.ReplaceAll(s, ",", " ")
		s = strings.ReplaceAll(s, "\n", " ")
		return s
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		fields := []string{rec.URL, rec.Username, rec.Password, rec.Extra, rec.Name, rec.Grouping, rec.TOTP}
		for i, f := range fields {
			fields[i] = clean(f)
		}
		rows = append(rows, fields)
	}
	return joinBareCSV(lastPassHeader, rows)
}
