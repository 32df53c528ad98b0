package cmd

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vaultgen",
	Short: "Generate synthetic password-manager export files",
	Long: `vaultgen produces structurally valid export files for seven password
managers (Bitwarden, LastPass, Keeper, Edge, KeePassX, KeePass2, Password
Depot), with configurable realism: weak and reused passwords, locale-aware
content, nested collections, and deliberate corruption ("Mr Blobby") for
testing importer error handling.

All generated data is synthetic. Nothing here is a secret.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	viper.SetEnvPrefix("VAULTGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the process logger and a context carrying it, matching
// how the rest of the module extracts loggers via ctxzap.
func newLogger() (*zap.Logger, context.Context, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return l, ctxzap.ToContext(context.Background(), l), nil
}
