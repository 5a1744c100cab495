// Package clean turns a raw results file into a persisted cleaned table.
package clean

import (
	"fmt"

	"github.com/Zuo-Peng/mocap-results/internal/parse"
	"github.com/Zuo-Peng/mocap-results/internal/table"
	"go.uber.org/zap"
)

type Options struct {
	Input  string
	Output string
}

type Stats struct {
	RawRows int
	Samples int
	Lateral int
	Axial   int
}

func (s Stats) String() string {
	return fmt.Sprintf("raw_rows=%d samples=%d lateral=%d axial=%d",
		s.RawRows, s.Samples, s.Lateral, s.Axial)
}

type Result struct {
	Table table.Table
	Stats Stats
}

// Run loads, reshapes and decodes opts.Input, then writes the cleaned table
// to opts.Output. A missing input yields an empty table; the output file is
// still written with its header.
func Run(opts Options, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	raw, err := parse.LoadRaw(opts.Input, log)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Input, err)
	}

	t, err := Decode(raw, log)
	if err != nil {
		return nil, err
	}

	if err := table.WriteCSV(opts.Output, t); err != nil {
		return nil, fmt.Errorf("write %s: %w", opts.Output, err)
	}
	log.Info("cleaned table written", zap.String("path", opts.Output), zap.Int("rows", t.Len()))

	res := &Result{Table: t, Stats: Stats{RawRows: len(raw), Samples: t.Len()}}
	for _, r := range t.Rows {
		if r.Side == parse.SideAxial {
			res.Stats.Axial++
		} else {
			res.Stats.Lateral++
		}
	}
	return res, nil
}

// Decode applies the reshaping stages to raw records in order.
func Decode(raw parse.Records, log *zap.Logger) (table.Table, error) {
	if log == nil {
		log = zap.NewNop()
	}

	b, err := parse.ReshapeColumns(raw)
	if err != nil {
		return table.Table{}, err
	}
	logStage(log, "reshape", b)

	if b, err = parse.DecodeSectionColumn(b); err != nil {
		return table.Table{}, err
	}
	logStage(log, "section", b)

	if b, err = parse.DecodePathColumn(b); err != nil {
		return table.Table{}, err
	}
	logStage(log, "path", b)

	return parse.ToTable(b)
}

func logStage(log *zap.Logger, stage string, b *parse.Bundle) {
	log.Debug("stage done",
		zap.String("stage", stage),
		zap.Strings("columns", b.Names()),
		zap.Int("samples", b.Len()))
}
