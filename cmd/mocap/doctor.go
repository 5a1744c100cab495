package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/mocap-results/internal/clean"
	"github.com/Zuo-Peng/mocap-results/internal/parse"
	"github.com/Zuo-Peng/mocap-results/internal/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, raw input, cleaned table and plot dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("=== Config ===")
			cfg.Finish()
			if err := cfg.Validate(); err != nil {
				fmt.Printf("  %v\n", err)
			} else {
				fmt.Println("  Status: OK")
			}

			fmt.Println("\n=== Raw Input ===")
			fmt.Printf("  Path: %s\n", cfg.Clean.Input)
			if !checkFile(cfg.Clean.Input) {
				fmt.Println("  Status: NOT FOUND (clean will produce an empty table)")
			} else {
				raw, err := parse.LoadRaw(cfg.Clean.Input, zap.NewNop())
				if err != nil {
					fmt.Printf("  Read error: %v\n", err)
				} else if t, err := clean.Decode(raw, nil); err != nil {
					fmt.Printf("  Rows: %d\n", len(raw))
					fmt.Printf("  Status: BROKEN (%s: %v)\n", parse.Classify(err), err)
				} else {
					fmt.Printf("  Rows:    %d\n", len(raw))
					fmt.Printf("  Samples: %d\n", t.Len())
					fmt.Println("  Status: OK")
				}
			}

			fmt.Println("\n=== Cleaned Table ===")
			fmt.Printf("  Path: %s\n", cfg.Plot.Input)
			if !checkFile(cfg.Plot.Input) {
				fmt.Println("  Status: NOT FOUND (run 'mocap clean' first)")
			} else if t, err := table.ReadCSV(cfg.Plot.Input); err != nil {
				fmt.Printf("  Status: BROKEN (%v)\n", err)
			} else {
				fmt.Printf("  Rows:  %d\n", t.Len())
				fmt.Printf("  Parts: %v\n", t.Parts())
				fmt.Println("  Status: OK")
			}

			fmt.Println("\n=== Plot Dir ===")
			if info, err := os.Stat(cfg.Plot.Dir); err != nil {
				fmt.Printf("  %s (NOT FOUND, created on first plot)\n", cfg.Plot.Dir)
			} else if !info.IsDir() {
				fmt.Printf("  %s (NOT A DIRECTORY)\n", cfg.Plot.Dir)
			} else {
				fmt.Printf("  %s (OK)\n", cfg.Plot.Dir)
			}

			return nil
		},
	}
}

func checkFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
