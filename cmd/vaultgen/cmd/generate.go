package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaultgen/vaultgen/pkg/export"
	"github.com/vaultgen/vaultgen/pkg/urlconfig"
	"github.com/vaultgen/vaultgen/pkg/vault"
)

var generateOpts vault.Options

var (
	generateOutput  string
	generateURLConf string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one vault export",
	Example: `  vaultgen generate --format lastpass --logins 50
  vaultgen generate --format bitwarden --type org --logins 100 \
      --collections --collection-count 5 --distribute-items
  vaultgen generate --format keepass2 --logins 200 --mr-blobby --blobby-pct 20`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()

	f.StringVar((*string)(&generateOpts.VaultFormat), "format", "bitwarden", "export format (bitwarden, lastpass, keeper, edge, keepassx, keepass2, passworddepot)")
	f.StringVar((*string)(&generateOpts.VaultType), "type", "individual", "vault type (individual, org)")
	f.IntVar(&generateOpts.LoginCount, "logins", 10, "number of login items")
	f.IntVar(&generateOpts.SecureNoteCount, "notes", 0, "number of secure notes (bitwarden only)")
	f.IntVar(&generateOpts.CreditCardCount, "cards", 0, "number of credit cards (bitwarden only)")
	f.IntVar(&generateOpts.IdentityCount, "identities", 0, "number of identities (bitwarden only)")
	f.StringVar(&generateOpts.Language, "language", "en", "content locale")

	f.BoolVar(&generateOpts.UseRealUrls, "real-urls", false, "use curated popular site URLs")
	f.BoolVar(&generateOpts.UseEnterpriseUrls, "enterprise-urls", false, "use the enterprise URL list")
	f.StringVar(&generateURLConf, "url-config", "", "path to a persisted enterprise URL config file")

	f.BoolVar(&generateOpts.UseCollections, "collections", false, "generate collections (bitwarden org only)")
	f.BoolVar(&generateOpts.UseNestedCollections, "nested-collections", false, "generate nested collections / folders")
	f.BoolVar(&generateOpts.UseRandomDepthNesting, "random-depth", false, "randomize nesting depth up to the configured maximum")
	f.IntVar(&generateOpts.CollectionCount, "collection-count", 5, "flat collection count")
	f.IntVar(&generateOpts.TopLevelCollectionCount, "top-level-collections", 3, "top-level collection count when nesting")
	f.IntVar(&generateOpts.CollectionNestingDepth, "nesting-depth", 3, "maximum nesting depth")
	f.IntVar(&generateOpts.TotalCollectionCount, "total-collections", 15, "total collection count when nesting")
	f.BoolVar(&generateOpts.DistributeItems, "distribute-items", false, "assign items to 1-3 random collections")

	f.BoolVar(&generateOpts.UseWeakPasswords, "weak-passwords", false, "mix in weak passwords")
	f.IntVar(&generateOpts.WeakPasswordPercentage, "weak-pct", 30, "weak password percentage")
	f.BoolVar(&generateOpts.ReusePasswords, "reuse-passwords", false, "reuse passwords across items")
	f.IntVar(&generateOpts.PasswordReusePercentage, "reuse-pct", 30, "password reuse percentage")

	f.BoolVar(&generateOpts.UseMrBlobby, "mr-blobby", false, "corrupt a percentage of the output")
	f.IntVar(&generateOpts.MrBlobbyPercentage, "blobby-pct", 10, "corruption percentage (5-100)")

	f.Int64Var(&generateOpts.Seed, "seed", 0, "random seed (0 seeds from the clock)")
	f.StringVar(&generateOutput, "output", "", "write to file instead of stdout")

	_ = viper.BindPFlags(f)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cobraCmd *cobra.Command, _ []string) error {
	logger, ctx, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if generateURLConf != "" {
		cfg := urlconfig.Load(generateURLConf)
		generateOpts.EnterpriseUrls = cfg.Resolve()
		generateOpts.UseEnterpriseUrls = true
	}

	if err := generateOpts.Validate(); err != nil {
		return err
	}

	result, err := export.Generate(ctx, generateOpts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if generateOutput == "" {
		fmt.Fprintln(cobraCmd.OutOrStdout(), result.Data)
		return nil
	}
	if err := os.WriteFile(generateOutput, []byte(result.Data), 0o600); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	fmt.Fprintf(cobraCmd.OutOrStdout(), "wrote %s (%d bytes)\n", generateOutput, len(result.Data))
	return nil
}
