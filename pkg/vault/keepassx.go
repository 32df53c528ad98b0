package vault

import (
	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// KeePassXRecord is one row of a KeePassX CSV export.
type KeePassXRecord struct {
	Group    string
	Title    string
	Username string
	Password string
	URL      string
	Notes    string
}

var keePassXHeader = []string{"Group", "Title", "Username", "Password", "URL", "Notes"}

var keePassXGroups = []string{"Root", "Internet", "Email", "Banking", "Work"}

// Real KeePassX databases are sparse: not every entry carries a URL,
// username or note. These presence rates mimic that.
const (
	keePassXURLChancePct      = 90
	keePassXUsernameChancePct = 95
	keePassXNotesChancePct    = 70
)

// GenerateKeePassX builds count records with independently randomized
// field presence.
func GenerateKeePassX(r *randutil.Rand, loc *locale.Locale, pw *password.Generator, opts *Options) []*KeePassXRecord {
	urls := newURLPicker(r, loc, opts)
	records := make([]*KeePassXRecord, 0, opts.LoginCount)
	for i := 0; i < opts.LoginCount; i++ {
		site := urls.pick()
		rec := &KeePassXRecord{
			Group:    randutil.Pick(r, keePassXGroups),
			Title:    siteName(site),
			Password: pw.Password(),
		}
		if r.Chance(keePassXURLChancePct) {
			rec.URL = site
		}
		if r.Chance(keePassXUsernameChancePct) {
			rec.Username = loc.Username(r)
		}
		if r.Chance(keePassXNotesChancePct) {
			rec.Notes = loc.Note(r)
		}
		records = append(records, rec)
	}
	return records
}

// SerializeKeePassX renders fully double-quoted CSV.
func SerializeKeePassX(records []*KeePassXRecord) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Group, rec.Title, rec.Username, rec.Password, rec.URL, rec.Notes})
	}
	return joinQuotedCSV(keePassXHeader, rows)
}
