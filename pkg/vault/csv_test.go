package vault

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEdgeFullyQuoted(t *testing.T) {
	opts := &Options{VaultFormat: FormatEdge, LoginCount: 5}
	r, loc, pw := testRun(t, opts)
	out := SerializeEdge(GenerateEdge(r, loc, pw, opts))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	require.Equal(t, `"name","url","username","password"`, lines[0])
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, `"`))
		require.True(t, strings.HasSuffix(line, `"`))
	}
}

func TestKeePassXSparseFields(t *testing.T) {
	opts := &Options{VaultFormat: FormatKeePassX, LoginCount: 300}
	r, loc, pw := testRun(t, opts)
	records := GenerateKeePassX(r, loc, pw, opts)

	var missingURL, missingUser, missingNotes int
	for _, rec := range records {
		require.NotEmpty(t, rec.Title)
		require.NotEmpty(t, rec.Password)
		if rec.URL == "" {
			missingURL++
		}
		if rec.Username == "" {
			missingUser++
		}
		if rec.Notes == "" {
			missingNotes++
		}
	}
	// 10%/5%/30% omission rates over 300 records; generous bounds.
	require.Greater(t, missingURL, 0)
	require.Greater(t, missingNotes, missingUser, "notes are omitted far more often than usernames")
}

func TestPasswordDepotSemicolonRows(t *testing.T) {
	opts := &Options{VaultFormat: FormatPasswordDepot, LoginCount: 8}
	r, loc, pw := testRun(t, opts)
	out := SerializePasswordDepot(GeneratePasswordDepot(r, loc, pw, opts))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	for i, line := range lines {
		require.Len(t, strings.Split(line, ";"), 9, "row %d", i)
		require.NotContains(t, line, `"`)
	}
}

func TestQuotedCSVEscapesInnerQuotes(t *testing.T) {
	out := joinQuotedCSV([]string{"a"}, [][]string{{`say "hi"`}})
	require.Equal(t, "\"a\"\n\"say \"\"hi\"\"\"", out)
}

func TestSiteName(t *testing.T) {
	require.Equal(t, "github", siteName("https://www.github.com"))
	require.Equal(t, "zoom", siteName("https://www.zoom.us"))
	require.Equal(t, "intranet", siteName("https://intranet/portal"))
	require.Equal(t, "example", siteName("http://example.com"))
}
