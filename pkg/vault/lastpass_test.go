package vault

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLastPassSixLinesSevenFields(t *testing.T) {
	opts := &Options{VaultFormat: FormatLastPass, LoginCount: 5}
	r, loc, pw := testRun(t, opts)

	records := GenerateLastPass(r, loc, pw, opts)
	require.Len(t, records, 5)

	out := SerializeLastPass(records)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6, "1 header + 5 data rows")
	require.Equal(t, "url,username,password,extra,name,grouping,totp", lines[0])

	for i, line := range lines[1:] {
		require.Len(t, strings.Split(line, ","), 7, "data row %d", i)
	}
}

func TestLastPassUnquoted(t *testing.T) {
	opts := &Options{VaultFormat: FormatLastPass, LoginCount: 20}
	r, loc, pw := testRun(t, opts)
	out := SerializeLastPass(GenerateLastPass(r, loc, pw, opts))
	require.NotContains(t, out, `"`, "lastpass csv is bare")
}

func TestLastPassDeterministicForSeed(t *testing.T) {
	build := func() string {
		opts := &Options{VaultFormat: FormatLastPass, LoginCount: 10, UseWeakPasswords: true, WeakPasswordPercentage: 50}
		r, loc, pw := testRun(t, opts)
		return SerializeLastPass(GenerateLastPass(r, loc, pw, opts))
	}
	require.Equal(t, build(), build(), "same seed yields identical output")
}
