package vault

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func generateTree(t *testing.T, logins int) *KeePass2Group {
	t.Helper()
	opts := &Options{VaultFormat: FormatKeePass2, LoginCount: logins}
	r, loc, pw := testRun(t, opts)
	return GenerateKeePass2(r, loc, pw, opts)
}

func TestKeePass2EntryConservation(t *testing.T) {
	for _, n := range []int{1, 3, 8, 9, 50, 100, 999} {
		root := generateTree(t, n)
		require.Equal(t, n, root.CountEntries(), "loginCount=%d", n)
	}
}

func TestKeePass2StandardSubgroups(t *testing.T) {
	root := generateTree(t, 20)
	require.Len(t, root.Groups, 6)
	names := make([]string, 0, 6)
	for _, sub := range root.Groups {
		names = append(names, sub.Name)
		require.Empty(t, sub.Groups, "subgroups are flat")
	}
	require.Equal(t, []string{"General", "Windows", "Network", "Internet", "eMail", "Homebanking"}, names)
}

func TestKeePass2RootShare(t *testing.T) {
	root := generateTree(t, 100)
	require.Equal(t, 30, len(root.Entries), "30%% of 100 entries stay in root")

	small := generateTree(t, 5)
	require.Equal(t, 5, len(small.Entries), "root floor absorbs tiny vaults entirely")
}

func TestSerializeKeePass2Structure(t *testing.T) {
	root := generateTree(t, 12)
	out := SerializeKeePass2(root)

	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8" standalone="yes"?>`))
	require.True(t, strings.HasSuffix(out, "</KeePassFile>"))
	require.Contains(t, out, "<Meta>")
	require.Contains(t, out, "<Root>")
	require.Contains(t, out, ZeroUUID)

	// Fixed element order inside an entry: UUID before Times before the
	// String key/value pairs.
	entryStart := strings.Index(out, "<Entry>")
	require.Greater(t, entryStart, 0)
	entry := out[entryStart:]
	uuidIdx := strings.Index(entry, "<UUID>")
	timesIdx := strings.Index(entry, "<Times>")
	stringIdx := strings.Index(entry, "<String>")
	require.Greater(t, timesIdx, uuidIdx)
	require.Greater(t, stringIdx, timesIdx)
}

func TestSerializeKeePass2EscapesValues(t *testing.T) {
	root := &KeePass2Group{
		UUID: ZeroUUID,
		Name: "Root",
		Entries: []*KeePass2Entry{{
			UUID:     ZeroUUID,
			Title:    `Tom & "Jerry" <admin>`,
			Username: "user",
			Password: "p<a>ss",
			URL:      "https://example.com/?a=1&b=2",
			Notes:    "",
		}},
	}
	out := SerializeKeePass2(root)
	require.Contains(t, out, "Tom &amp; &quot;Jerry&quot; &lt;admin&gt;")
	require.Contains(t, out, "p&lt;a&gt;ss")
	require.NotContains(t, out, `<Value>Tom & `)
}

func TestKeePass2UUIDsDeterministicForSeed(t *testing.T) {
	collect := func(root *KeePass2Group) []string {
		var uuids []string
		var walk func(g *KeePass2Group)
		walk = func(g *KeePass2Group) {
			uuids = append(uuids, g.UUID)
			for _, e := range g.Entries {
				uuids = append(uuids, e.UUID)
			}
			for _, sub := range g.Groups {
				walk(sub)
			}
		}
		walk(root)
		return uuids
	}

	first := collect(generateTree(t, 25))
	second := collect(generateTree(t, 25))
	require.Equal(t, first, second, "same seed reproduces every UUID in the tree")
}

func TestKeePass2UUIDsAreBase64(t *testing.T) {
	root := generateTree(t, 3)
	require.Len(t, root.UUID, 24)
	require.True(t, strings.HasSuffix(root.UUID, "=="), "16 bytes base64-encode with == padding")
}
