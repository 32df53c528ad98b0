package export

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultgen/vaultgen/pkg/vault"
)

func TestGenerateEveryFormat(t *testing.T) {
	for _, format := range vault.Formats() {
		format := format
		t.Run(string(format), func(t *testing.T) {
			opts := vault.Options{
				VaultFormat: format,
				Language:    "en",
				LoginCount:  12,
				Seed:        42,
			}
			require.NoError(t, opts.Validate())

			result, err := Generate(context.Background(), opts)
			require.NoError(t, err)
			require.NotEmpty(t, result.Data)
			require.Equal(t, format.ContentType(), result.ContentType)
			require.Equal(t, format.Filename(), result.Filename)
		})
	}
}

func TestGenerateSeedDeterminism(t *testing.T) {
	opts := vault.Options{
		VaultFormat: vault.FormatLastPass,
		Language:    "de",
		LoginCount:  25,
		Seed:        777,
	}

	first, err := Generate(context.Background(), opts)
	require.NoError(t, err)
	second, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	require.Equal(t, first.Data, second.Data, "same seed, same export")
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	opts := vault.Options{
		VaultFormat: vault.FormatLastPass,
		Language:    "en",
		LoginCount:  25,
		Seed:        1,
	}
	first, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	opts.Seed = 2
	second, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	require.NotEqual(t, first.Data, second.Data)
}

func TestGenerateWithMrBlobby(t *testing.T) {
	opts := vault.Options{
		VaultFormat:        vault.FormatLastPass,
		Language:           "en",
		LoginCount:         30,
		Seed:               13,
		UseMrBlobby:        true,
		MrBlobbyPercentage: 20,
	}
	require.NoError(t, opts.Validate())

	result, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	clean, err := Generate(context.Background(), vault.Options{
		VaultFormat: vault.FormatLastPass,
		Language:    "en",
		LoginCount:  30,
		Seed:        13,
	})
	require.NoError(t, err)
	require.NotEqual(t, clean.Data, result.Data, "corruption must leave a trace")
	require.True(t, strings.HasPrefix(result.Data, "url,username,password"),
		"header survives output corruption")
}

func TestGenerateOrgVaultWithCollections(t *testing.T) {
	opts := vault.Options{
		VaultFormat:             vault.FormatBitwarden,
		VaultType:               vault.VaultOrg,
		Language:                "fr",
		LoginCount:              20,
		SecureNoteCount:         5,
		UseCollections:          true,
		UseNestedCollections:    true,
		TopLevelCollectionCount: 3,
		CollectionNestingDepth:  3,
		TotalCollectionCount:    12,
		Seed:                    99,
	}
	require.NoError(t, opts.Validate())

	result, err := Generate(context.Background(), opts)
	require.NoError(t, err)
	require.Contains(t, result.Data, `"collections"`)
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := Generate(context.Background(), vault.Options{
		VaultFormat: "nope",
		LoginCount:  1,
	})
	require.Error(t, err)
}
