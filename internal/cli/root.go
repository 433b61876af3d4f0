package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gendoc/config"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gendoc",
	Short: "Generate documentation and symbol tables from annotated headers",
	Long: `gendoc reads annotated C headers, pairs every /*** marker block with the
declaration that follows it, and writes a plain-text documentation dump plus
quoted name and declaration listings for static array initializers.

Example usage:
  gendoc                      # Generate every category (same as 'gendoc generate')
  gendoc generate --only forms
  gendoc scan src/primitives.h
  gendoc init                 # Write the default gendoc.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureRootDir(); err != nil {
			return err
		}

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return setupLogging(cfg.Logging)
	},
	RunE: runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gendoc.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	addGenerateFlags(rootCmd)
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// ensureRootDir defaults --dir to the working directory.
func ensureRootDir() error {
	if rootDir != "" {
		return nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	rootDir = wd
	return nil
}

func setupLogging(lc config.LoggingConfig) error {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "gendoc",
	}))
	return nil
}
