package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vaultgen/vaultgen/pkg/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the generation HTTP API",
	RunE: func(_ *cobra.Command, _ []string) error {
		logger, _, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		addr := viper.GetString("addr")
		app := api.NewApp(logger)
		logger.Info("starting api server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
