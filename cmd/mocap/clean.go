package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/mocap-results/internal/clean"
	"github.com/Zuo-Peng/mocap-results/internal/parse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func cleanCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Reshape a tab-separated results file into a cleaned CSV table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := finishConfig(cmd, map[string]func(){
				"input":  func() { cfg.Clean.Input = input },
				"output": func() { cfg.Clean.Output = output },
			})
			if err != nil {
				return err
			}

			res, err := clean.Run(clean.Options{Input: cfg.Clean.Input, Output: cfg.Clean.Output}, logger)
			if err != nil {
				logger.Error("clean failed", zap.String("code", parse.Classify(err)), zap.Error(err))
				return fmt.Errorf("clean: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Done. %s\n", res.Stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Raw results file (default data/Results.txt)")
	cmd.Flags().StringVar(&output, "output", "", "Cleaned CSV file (default data/CleanedResults.csv)")

	return cmd
}
