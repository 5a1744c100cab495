package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

// LoadRaw reads a results file into tab-split records.
//
// A file that cannot be opened is not fatal: the failure is logged and an
// empty record set is returned with a nil error. A file that opens but is
// empty or cannot be read to the end is reported as a DecodeError.
func LoadRaw(path string, log *zap.Logger) (Records, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("fetching data", zap.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrIO, err)
		log.Warn("no data found, continuing with empty data",
			zap.String("path", path),
			zap.String("code", Classify(err)),
			zap.Error(err))
		return Records{}, nil
	}
	defer f.Close()

	recs, err := ReadRecords(f)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, decodeErrorf("read", "%s is empty", path)
	}
	return recs, nil
}

// ReadRecords splits r into lines and each line on tabs. Lines are trimmed
// of surrounding whitespace first; blank lines are kept so row positions
// stay fixed.
func ReadRecords(r io.Reader) (Records, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var recs Records
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		recs = append(recs, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, decodeErrorf("read", "line %d: %v", len(recs)+1, err)
	}
	if recs == nil {
		recs = Records{}
	}
	return recs, nil
}
