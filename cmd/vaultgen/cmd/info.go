package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultgen/vaultgen/pkg/locale"
	"github.com/vaultgen/vaultgen/pkg/vault"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported export formats",
	Run: func(cobraCmd *cobra.Command, _ []string) {
		for _, f := range vault.Formats() {
			fmt.Fprintf(cobraCmd.OutOrStdout(), "%-14s %-18s %s\n", f, f.ContentType(), f.Filename())
		}
	},
}

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List supported content locales",
	Run: func(cobraCmd *cobra.Command, _ []string) {
		for _, code := range locale.Supported() {
			fmt.Fprintln(cobraCmd.OutOrStdout(), code)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(localesCmd)
}
