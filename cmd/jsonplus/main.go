// Package main provides the CLI entrypoint for jsonplus.
//
// jsonplus reads a data document together with its sibling metadata document
// (data.json and data.meta.json) and prints every field next to the
// annotation that applies to it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("JSONPLUS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "jsonplus",
		Short:         "Annotate the fields of a document with a parallel metadata document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cobra.CheckErr(bindFlags(v, rootCmd.PersistentFlags(), "verbose", "no-color"))

	rootCmd.AddCommand(newShowCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// bindFlags binds each named flag to the viper key of the same name, so
// JSONPLUS_<NAME> environment variables can override it.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag %q", name)
		}

		if err := v.BindPFlag(name, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
