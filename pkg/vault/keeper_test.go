package vault

import (
	"encoding/json"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"
)

func TestKeeperFlatFolders(t *testing.T) {
	opts := &Options{VaultFormat: FormatKeeper, LoginCount: 40}
	r, loc, pw := testRun(t, opts)
	export := GenerateKeeper(r, loc, pw, opts)

	require.Len(t, export.Records, 40)
	require.Empty(t, export.SharedFolders, "no shared folder tree without nesting")

	for _, rec := range export.Records {
		require.NotEmpty(t, rec.Folders)
		first := rec.Folders[0]
		require.Contains(t, []string{"Personal", "Work", "Archive"}, first.Folder)
		if len(rec.Folders) > 1 {
			require.Equal(t, "Shared Folder", rec.Folders[1].SharedFolder)
		}
	}
}

func TestKeeperNestedFolders(t *testing.T) {
	opts := &Options{VaultFormat: FormatKeeper, LoginCount: 60, UseNestedCollections: true}
	r, loc, pw := testRun(t, opts)
	export := GenerateKeeper(r, loc, pw, opts)

	shared := mapset.NewSet[string]()
	for _, sf := range export.SharedFolders {
		shared.Add(sf.Path)
	}

	for _, rec := range export.Records {
		require.NotEmpty(t, rec.Folders, "nested mode always places a record in at least one folder")
		for _, ref := range rec.Folders {
			require.True(t, ref.Folder != "" || ref.SharedFolder != "")
			if ref.SharedFolder != "" {
				require.True(t, shared.Contains(ref.SharedFolder),
					"shared folder ref %q must exist in shared_folders", ref.SharedFolder)
			}
		}
	}
}

func TestKeeperFolderPathsUseBackslashes(t *testing.T) {
	opts := &Options{VaultFormat: FormatKeeper, LoginCount: 5, UseNestedCollections: true}
	r, loc, pw := testRun(t, opts)
	export := GenerateKeeper(r, loc, pw, opts)

	sawNested := false
	for _, sf := range export.SharedFolders {
		require.NotContains(t, sf.Path, "/")
		if KeeperFolderDepth(sf.Path) > 1 {
			sawNested = true
			require.Contains(t, sf.Path, "\\")
		}
	}
	_ = sawNested // nesting is probabilistic; paths just have to be well-formed
}

func TestSerializeKeeperRoundTrips(t *testing.T) {
	opts := &Options{VaultFormat: FormatKeeper, LoginCount: 3}
	r, loc, pw := testRun(t, opts)
	export := GenerateKeeper(r, loc, pw, opts)

	data, err := SerializeKeeper(export)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(data, "{"))

	var decoded KeeperExport
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))
	require.Len(t, decoded.Records, 3)
	for _, rec := range decoded.Records {
		require.NotEmpty(t, rec.Title)
		require.NotEmpty(t, rec.Password)
	}
}
