package plot

import (
	"errors"
	"fmt"
	"os"

	"github.com/Zuo-Peng/mocap-results/internal/table"
	"go.uber.org/zap"
)

// LoadTable reads the cleaned table at path. A missing file or one without
// the cleaned header is logged and reported as ErrNoData; other read
// failures are returned as they are.
func LoadTable(path string, log *zap.Logger) (table.Table, error) {
	if log == nil {
		log = zap.NewNop()
	}
	t, err := table.ReadCSV(path)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, table.ErrHeader) {
		log.Warn("cleaned table unusable", zap.String("path", path), zap.Error(err))
		return table.Table{}, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if err != nil {
		return table.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}
