package vault

import (
	"strings"
	"time"

	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// PasswordDepotRecord is one row of a Password Depot CSV export.
type PasswordDepotRecord struct {
	Description  string
	Importance   string
	Password     string
	LastModified string
	ExpiryDate   string
	Username     string
	URL          string
	Comments     string
	Category     string
}

// Password Depot importers key on column position, not header names.
var passwordDepotHeader = []string{
	"description", "importance", "password", "last_modified", "expiry_date",
	"username", "url", "comments", "category",
}

var passwordDepotImportance = []string{"Low", "Normal", "High"}

var passwordDepotCategories = []string{"", "Internet", "Banking", "Shopping", "Work", "Private"}

// GeneratePasswordDepot builds count flat login records.
func GeneratePasswordDepot(r *randutil.Rand, loc *locale.Locale, pw *password.Generator, opts *Options) []*PasswordDepotRecord {
	urls := newURLPicker(r, loc, opts)
	records := make([]*PasswordDepotRecord, 0, opts.LoginCount)
	for i := 0; i < opts.LoginCount; i++ {
		site := urls.pick()
		modified := time.Now().AddDate(0, 0, -r.IntBetween(0, 730)).Format("02.01.2006")
		rec := &PasswordDepotRecord{
			Description:  siteName(site),
			Importance:   randutil.Pick(r, passwordDepotImportance),
			Password:     pw.Password(),
			LastModified: modified,
			Username:     loc.Username(r),
			URL:          site,
			Comments:     loc.Note(r),
			Category:     randutil.Pick(r, passwordDepotCategories),
		}
		if r.Chance(20) {
			rec.ExpiryDate = time.Now().AddDate(0, r.IntBetween(1, 24), 0).Format("02.01.2006")
		}
		records = append(records, rec)
	}
	return records
}

// SerializePasswordDepot renders semicolon-delimited unquoted CSV. As with
// LastPass, delimiter characters are stripped from content so only Mr
// Blobby can break the column structure.
func SerializePasswordDepot(records []*PasswordDepotRecord) string {
	clean := func(s string) string {
		s = strings.ReplaceAll(s, ";", " ")
		s = strings.ReplaceAll(s, "\n", " ")
		return s
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		fields := []string{
			rec.Description, rec.Importance, rec.Password, rec.LastModified,
			rec.ExpiryDate, rec.Username, rec.URL, rec.Comments, rec.Category,
		}
		for i, f := range fields {
			fields[i] = clean(f)
		}
		rows = append(rows, fields)
	}
	return joinSemicolonCSV(passwordDepotHeader, rows)
}
