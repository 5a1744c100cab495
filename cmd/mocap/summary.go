package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/mocap-results/internal/report"
	"github.com/Zuo-Peng/mocap-results/internal/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func summaryCmd() *cobra.Command {
	var input string
	var maxCell int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count cleaned samples per body part and side",
		Long: `Reads the cleaned table and prints one line per body part and side with the
number of samples, subjects and tackle types. Output is TSV when stdout is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := finishConfig(cmd, map[string]func(){
				"input": func() { cfg.Plot.Input = input },
			})
			if err != nil {
				return err
			}

			t, err := table.ReadCSV(cfg.Plot.Input)
			if err != nil {
				return fmt.Errorf("read %s: %w", cfg.Plot.Input, err)
			}
			s := report.Summarize(t)

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return report.WriteTSV(os.Stdout, s)
			}
			fmt.Println(report.Styled(s, maxCell))
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Cleaned CSV file (default: clean output)")
	cmd.Flags().IntVar(&maxCell, "max-cell", 24, "Truncate cells wider than this")

	return cmd
}
