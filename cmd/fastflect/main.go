package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"fastflect/catalog"
	"fastflect/config"
	"fastflect/internal/models"
	"fastflect/shared/logger"
)

var (
	configPath string
	cfg        config.Config

	registerOnce sync.Once
	registerErr  error
)

var rootCmd = &cobra.Command{
	Use:   "fastflect",
	Short: "Compiled struct member accessors",
	Long: `fastflect compiles direct get/set accessors for struct fields and
properties known only at runtime, and caches them per member.

This CLI inspects member descriptors of the built-in demo models and
benchmarks compiled accessors against reflective lookups.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := cfg.Log.NewLogger()
		if err != nil {
			return fmt.Errorf("configuring logger: %w", err)
		}
		logger.SetGlobalLogger(l)

		registerOnce.Do(func() {
			registerErr = models.Register(catalog.Default())
		})
		if registerErr != nil {
			return fmt.Errorf("registering static members: %w", registerErr)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(benchCmd)
}
