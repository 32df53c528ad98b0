package urlconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultgen/vaultgen/pkg/vault"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Equal(t, SchemaVersion, cfg.Version)
	require.Empty(t, cfg.CustomUrls)
}

func TestLoadVersionMismatchResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	stale := `{"customUrls":[{"url":"https://old.example","category":"legacy"}],"disabledDefaults":[],"version":99}`
	require.NoError(t, os.WriteFile(path, []byte(stale), 0o600))

	cfg := Load(path)
	require.Empty(t, cfg.CustomUrls, "version mismatch resets to defaults")
	require.Equal(t, SchemaVersion, cfg.Version)
}

func TestLoadGarbageResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	require.Equal(t, Default(), Load(path))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")

	cfg := Default()
	require.NoError(t, cfg.Add("https://sso.corp.example", "auth"))
	cfg.SetDefaultDisabled(vault.DefaultEnterpriseSites[0], true)
	require.NoError(t, cfg.Save(path))

	loaded := Load(path)
	require.Len(t, loaded.CustomUrls, 1)
	require.Equal(t, "https://sso.corp.example", loaded.CustomUrls[0].URL)
	require.Equal(t, []string{vault.DefaultEnterpriseSites[0]}, loaded.DisabledDefaults)
}

func TestAddRejectsDuplicatesAndEmpty(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Add("https://a.example", ""))
	require.Error(t, cfg.Add("https://a.example", "again"))
	require.Error(t, cfg.Add("", ""))
}

func TestRemove(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Add("https://a.example", ""))
	cfg.Remove("https://a.example")
	require.Empty(t, cfg.CustomUrls)
	cfg.Remove("https://absent.example") // no-op
}

func TestResolveFlattens(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Add("https://custom.example", "tools"))
	cfg.SetDefaultDisabled(vault.DefaultEnterpriseSites[0], true)

	urls := cfg.Resolve()
	require.Contains(t, urls, "https://custom.example")
	require.NotContains(t, urls, vault.DefaultEnterpriseSites[0])
	require.Contains(t, urls, vault.DefaultEnterpriseSites[1])
	require.Len(t, urls, len(vault.DefaultEnterpriseSites), "one custom added, one default removed")
}
