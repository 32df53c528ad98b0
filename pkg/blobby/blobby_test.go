package blobby

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/password"
	"github.com/vaultgen/vaultgen/pkg/randutil"
	"github.com/vaultgen/vaultgen/pkg/vault"
)

func buildLastPass(t *testing.T, count int) []*vault.LastPassRecord {
	t.Helper()
	r := randutil.New(77)
	loc := locale.Resolve("en")
	opts := &vault.Options{VaultFormat: vault.FormatLastPass, LoginCount: count}
	pw := password.NewGenerator(r, loc, count, password.Options{})
	return vault.GenerateLastPass(r, loc, pw, opts)
}

func TestCorruptionCount(t *testing.T) {
	require.Equal(t, 0, CorruptionCount(0, 50))
	require.Equal(t, 1, CorruptionCount(1, 5))
	require.Equal(t, 1, CorruptionCount(10, 5))
	require.Equal(t, 2, CorruptionCount(10, 15))
	require.Equal(t, 10, CorruptionCount(10, 100))
	require.Equal(t, 25, CorruptionCount(100, 25))
}

func TestCorruptLastPassExactCount(t *testing.T) {
	for _, pct := range []int{5, 20, 50, 100} {
		records := buildLastPass(t, 40)
		before := make([]vault.LastPassRecord, len(records))
		for i, rec := range records {
			before[i] = *rec
		}

		CorruptLastPass(randutil.New(123), records, pct)

		changed := 0
		for i, rec := range records {
			if *rec != before[i] {
				changed++
			}
		}
		require.Equal(t, CorruptionCount(40, pct), changed, "pct=%d", pct)
	}
}

func TestCorruptSameSeedSameDamage(t *testing.T) {
	first := buildLastPass(t, 40)
	second := buildLastPass(t, 40)
	for i := range first {
		require.Equal(t, *first[i], *second[i], "inputs must start identical")
	}

	CorruptLastPass(randutil.New(123), first, 50)
	CorruptLastPass(randutil.New(123), second, 50)

	for i := range first {
		require.Equal(t, *first[i], *second[i],
			"same seed must damage the same records the same way (record %d)", i)
	}
}

func TestCorruptOutputSameSeedSameText(t *testing.T) {
	text := "url,username,password\nhttps://a.example,u1,p1\nhttps://b.example,u2,p2\nhttps://c.example,u3,p3"
	first := CorruptOutput(randutil.New(21), text, 100, vault.FormatLastPass)
	second := CorruptOutput(randutil.New(21), text, 100, vault.FormatLastPass)
	require.Equal(t, first, second)
}

func TestUnicodePayloadsCarryBOMEntry(t *testing.T) {
	require.Contains(t, unicodePayloads, "\uFEFFleading-bom")
}

func TestCorruptEmptyInputIsNoop(t *testing.T) {
	r := randutil.New(1)
	CorruptLastPass(r, nil, 50)
	CorruptEdge(r, nil, 50)
	CorruptKeeper(r, &vault.KeeperExport{}, 50)
	CorruptBitwarden(r, &vault.BitwardenExport{}, 50)
	CorruptKeePass2(r, &vault.KeePass2Group{Name: "empty"}, 50)
}

func TestCorruptBitwardenTypeAware(t *testing.T) {
	r := randutil.New(9)
	loc := locale.Resolve("en")
	opts := &vault.Options{
		VaultFormat:     vault.FormatBitwarden,
		LoginCount:      10,
		SecureNoteCount: 10,
		CreditCardCount: 10,
		IdentityCount:   10,
	}
	pw := password.NewGenerator(r, loc, opts.TotalItems(), password.Options{})
	export, err := vault.GenerateBitwarden(r, loc, pw, opts)
	require.NoError(t, err)

	CorruptBitwarden(randutil.New(31), export, 100)

	// Corruption must never move an item across variants: the union stays
	// consistent with its discriminant.
	for _, item := range export.Items {
		switch item.Type {
		case vault.ItemTypeLogin:
			require.NotNil(t, item.Login)
		case vault.ItemTypeSecureNote:
			require.NotNil(t, item.SecureNote)
		case vault.ItemTypeCard:
			require.NotNil(t, item.Card)
		case vault.ItemTypeIdentity:
			require.NotNil(t, item.Identity)
		}
	}
}

func TestCorruptKeePass2PerGroup(t *testing.T) {
	r := randutil.New(5)
	loc := locale.Resolve("en")
	opts := &vault.Options{VaultFormat: vault.FormatKeePass2, LoginCount: 120}
	pw := password.NewGenerator(r, loc, 120, password.Options{})
	root := vault.GenerateKeePass2(r, loc, pw, opts)

	entriesBefore := root.CountEntries()
	CorruptKeePass2(randutil.New(6), root, 50)
	require.Equal(t, entriesBefore, root.CountEntries(), "corruption never adds or drops entries")
}

func TestCorruptOutputCSVSkipsHeader(t *testing.T) {
	text := "url,username,password\nhttps://a.example,u1,p1\nhttps://b.example,u2,p2\nhttps://c.example,u3,p3"
	out := CorruptOutput(randutil.New(8), text, 100, vault.FormatLastPass)
	require.NotEqual(t, text, out)
	require.True(t, strings.HasPrefix(out, "url,username,password\n"), "header line is never corrupted")
}

func TestCorruptOutputKeePass2BreaksValues(t *testing.T) {
	xml := `<?xml version="1.0"?><KeePassFile><Value>one</Value><Value>two</Value><Value>three</Value></KeePassFile>`
	out := CorruptOutput(randutil.New(4), xml, 100, vault.FormatKeePass2)
	require.NotEqual(t, xml, out)
	require.NotContains(t, out, "<Value>one</Value>")
}

func TestCorruptOutputLeavesJSONAlone(t *testing.T) {
	text := `{"items":[{"name":"a"}]}`
	require.Equal(t, text, CorruptOutput(randutil.New(2), text, 100, vault.FormatBitwarden))
	require.Equal(t, text, CorruptOutput(randutil.New(2), text, 100, vault.FormatKeeper))
}

func TestCorruptOutputEmptyText(t *testing.T) {
	require.Equal(t, "", CorruptOutput(randutil.New(3), "", 50, vault.FormatLastPass))
}
