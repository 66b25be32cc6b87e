package ingest

import (
	"fmt"
	"path/filepath"

	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/common"
)

// Classify maps a file name to its handling format by lowercase extension.
// Unrecognized extensions fail with ErrUnsupportedFormat before any bytes
// are read.
func Classify(fileName string) (constants.FileFormat, error) {
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	format, ok := constants.MapExtToFormat(ext)
	if !ok {
		return "", fmt.Errorf("%w: .%s", common.ErrUnsupportedFormat, ext)
	}
	return format, nil
}
