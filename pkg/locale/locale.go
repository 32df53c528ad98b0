// Package locale maps language codes to locale-specific fake-data sources.
// Resolution never fails: unknown codes fall back to English.
package locale

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/language"

	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// Weighted-selection split between the locale's native content table and
// generic synthesized content.
const (
	companyTableWeightPct = 60
	noteTableWeightPct    = 70
)

// Locale is a fake-data source for one language.
type Locale struct {
	Code string

	firstNames    []string
	lastNames     []string
	companies     []string
	domainWords   []string
	notes         []string
	weakPasswords []string
}

// Tag order matters: index 0 is the matcher's fallback, so English leads.
var supportedTags = buildTags()

var matcher = language.NewMatcher(supportedTags)

func buildTags() []language.Tag {
	tags := []language.Tag{language.English}
	for code := range locales {
		if code == "en" {
			continue
		}
		tags = append(tags, language.Make(code))
	}
	return tags
}

// Resolve returns the locale for code, falling back to English for unknown
// or region-qualified codes ("de-AT" resolves to "de").
func Resolve(code string) *Locale {
	code = strings.TrimSpace(strings.ToLower(code))
	if l, ok := locales[code]; ok {
		return l
	}
	tag, err := language.Parse(code)
	if err != nil {
		return locales["en"]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supportedTags) {
		return locales["en"]
	}
	base, _ := supportedTags[idx].Base()
	if l, ok := locales[base.String()]; ok {
		return l
	}
	return locales["en"]
}

// Supported lists every registered locale code, sorted.
func Supported() []string {
	set := mapset.NewSet[string]()
	for code := range locales {
		set.Add(code)
	}
	codes := set.ToSlice()
	sort.Strings(codes)
	return codes
}

// FirstName returns a locale first name.
func (l *Locale) FirstName(r *randutil.Rand) string {
	return randutil.Pick(r, l.firstNames)
}

// LastName returns a locale surname.
func (l *Locale) LastName(r *randutil.Rand) string {
	return randutil.Pick(r, l.lastNames)
}

// Username builds a plausible login name from locale person names.
func (l *Locale) Username(r *randutil.Rand) string {
	first := strings.ToLower(stripDiacritics(l.FirstName(r)))
	last := strings.ToLower(stripDiacritics(l.LastName(r)))
	switch r.Intn(4) {
	case 0:
		return first + "." + last
	case 1:
		return first + last
	case 2:
		return fmt.Sprintf("%s%d", first, r.IntBetween(1, 999))
	default:
		return string([]rune(first)[0]) + last
	}
}

// Email builds an address from the username and a generic mail domain.
func (l *Locale) Email(r *randutil.Rand) string {
	domains := []string{"gmail.com", "outlook.com", "yahoo.com", "proton.me", "mail.com"}
	return l.Username(r) + "@" + randutil.Pick(r, domains)
}

// CompanyName mixes the locale table with generic synthesis.
func (l *Locale) CompanyName(r *randutil.Rand) string {
	if len(l.companies) > 0 && r.Chance(companyTableWeightPct) {
		return randutil.Pick(r, l.companies)
	}
	suffixes := []string{"Group", "Labs", "Systems", "Solutions", "Partners", "Holdings"}
	return capitalize(l.DomainWord(r)) + " " + randutil.Pick(r, suffixes)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DomainWord returns a lowercase word suitable for building domain names.
func (l *Locale) DomainWord(r *randutil.Rand) string {
	return stripDiacritics(randutil.Pick(r, l.domainWords))
}

// Note returns a short free-text note, preferring native-script content.
func (l *Locale) Note(r *randutil.Rand) string {
	if len(l.notes) > 0 && r.Chance(noteTableWeightPct) {
		return randutil.Pick(r, l.notes)
	}
	generic := []string{
		"Account recovery codes are in the safe.",
		"Shared with the finance team.",
		"Rotate this credential quarterly.",
		"Legacy account, migration pending.",
		"Contact IT before changing this password.",
	}
	return randutil.Pick(r, generic)
}

// WeakPassword returns an entry from the locale's weak-password table.
func (l *Locale) WeakPassword(r *randutil.Rand) string {
	return randutil.Pick(r, l.weakPasswords)
}

// DictionaryWord returns a common word usable as a weak password base.
func (l *Locale) DictionaryWord(r *randutil.Rand) string {
	return randutil.Pick(r, l.domainWords)
}

// stripDiacritics maps accented and non-ASCII letters onto ASCII so that
// usernames and domains stay URL-safe regardless of locale.
func stripDiacritics(s string) string {
	var b strings.Builder
	for _, c := range s {
		if repl, ok := asciiFold[c]; ok {
			b.WriteString(repl)
			continue
		}
		if c < 128 {
			b.WriteRune(c)
			continue
		}
		// Non-Latin scripts fold to a stable romanized stand-in.
		b.WriteString(fmt.Sprintf("x%d", int(c)%100))
	}
	return b.String()
}

var asciiFold = map[rune]string{
	'á': "a", 'à': "a", 'â': "a", 'ä': "a", 'ã': "a", 'å': "a", 'ą': "a",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e", 'ę': "e",
	'í': "i", 'ì': "i", 'î': "i", 'ï': "i",
	'ó': "o", 'ò': "o", 'ô': "o", 'ö': "o", 'õ': "o",
	'ú': "u", 'ù': "u", 'û': "u", 'ü': "u",
	'ç': "c", 'ć': "c", 'č': "c", 'ñ': "n", 'ń': "n",
	'ß': "ss", 'ł': "l", 'ś': "s", 'š': "s", 'ż': "z", 'ź': "z", 'ž': "z",
	'Á': "A", 'À': "A", 'Ä': "A", 'É': "E", 'È': "E", 'Í': "I",
	'Ó': "O", 'Ö': "O", 'Ú': "U", 'Ü': "U", 'Ç': "C", 'Ñ': "N", 'Ł': "L",
}
