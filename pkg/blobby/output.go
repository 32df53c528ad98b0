package blobby

import (
	"regexp"
	"strings"

	"github.com/vaultgen/vaultgen/pkg/randutil"
	"github.com/vaultgen/vaultgen/pkg/vault"
)

// Structural payloads injected into serialized text. These break parsing
// at the format's delimiter level rather than inside a field value.
var (
	csvLinePayloads = []string{
		`,"unterminated`,
		",,,,",
		"\nstray line without enough fields",
		`"`,
		",injected,extra,fields",
	}
	semicolonLinePayloads = []string{
		";;;",
		";injected;extra",
		"\nstray;line",
		`;"`,
	}
	xmlValuePayloads = []string{
		"raw < bracket",
		"ampersand & unescaped",
		"]]> cdata terminator",
		"<Value>nested</Value>",
		"<unclosed",
	}
)

// CorruptOutput damages serialized text. CSV formats get unescaped
// delimiters injected at delimiter boundaries in a percentage of data
// lines (the header is never touched); KeePass2 gets a percentage of its
// <Value> spans replaced with XML-breaking payloads. JSON formats are
// returned unchanged: JSON string escaping would neutralize injected
// payloads before an importer ever saw them, so their corruption is
// data-level only.
func CorruptOutput(r *randutil.Rand, text string, pct int, format vault.Format) string {
	switch format {
	case vault.FormatLastPass, vault.FormatEdge, vault.FormatKeePassX:
		return corruptDelimitedLines(r, text, pct, ",", csvLinePayloads)
	case vault.FormatPasswordDepot:
		return corruptDelimitedLines(r, text, pct, ";", semicolonLinePayloads)
	case vault.FormatKeePass2:
		return corruptXMLValues(r, text, pct)
	default:
		return text
	}
}

// corruptDelimitedLines picks data lines and splices a payload in at one
// of the line's delimiter positions (or the line end when none exist).
func corruptDelimitedLines(r *randutil.Rand, text string, pct int, delim string, payloads []string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}
	data := lines[1:]
	for _, idx := range pickIndices(r, len(data), pct) {
		line := data[idx]
		payload := randutil.Pick(r, payloads)
		positions := delimiterPositions(line, delim)
		if len(positions) == 0 {
			data[idx] = line + payload
			continue
		}
		at := positions[r.Intn(len(positions))]
		data[idx] = line[:at] + payload + line[at:]
	}
	return strings.Join(lines, "\n")
}

func delimiterPositions(line, delim string) []int {
	var positions []int
	for i := 0; i+len(delim) <= len(line); i++ {
		if line[i:i+len(delim)] == delim {
			positions = append(positions, i)
		}
	}
	return positions
}

var xmlValuePattern = regexp.MustCompile(`<Value>([^<]*)</Value>`)

// corruptXMLValues replaces the inner content of a percentage of
// <Value> spans with payloads the XML parser cannot survive.
func corruptXMLValues(r *randutil.Rand, text string, pct int) string {
	spans := xmlValuePattern.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return text
	}
	chosen := pickIndices(r, len(spans), pct)
	replace := make(map[int]string, len(chosen))
	for _, idx := range chosen {
		replace[idx] = randutil.Pick(r, xmlValuePayloads)
	}

	var b strings.Builder
	last := 0
	for i, span := range spans {
		payload, ok := replace[i]
		if !ok {
			continue
		}
		b.WriteString(text[last:span[0]])
		b.WriteString("<Value>" + payload + "</Value>")
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
