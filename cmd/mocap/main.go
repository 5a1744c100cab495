package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/mocap-results/internal/config"
	"github.com/Zuo-Peng/mocap-results/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	cfgFile string
	verbose bool

	logger *zap.Logger
	cfg    *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mocap",
		Short:         "Clean motion-capture results and plot them per body part",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(verbose)
			if err != nil {
				return err
			}
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(cleanCmd())
	rootCmd.AddCommand(plotCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// finishConfig applies flag overrides that were set and validates the result.
func finishConfig(cmd *cobra.Command, apply map[string]func()) error {
	for name, fn := range apply {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
	cfg.Finish()
	return cfg.Validate()
}
