package ingest

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/common"
	"github.com/hundredplus/onboard-tracker/internal/entity"
)

// SpreadsheetExtractor renders the first sheet of a workbook as plain text.
type SpreadsheetExtractor interface {
	ExtractText(ctx context.Context, r io.Reader) (string, error)
}

// DocumentExtractor renders a word-processed document as plain text.
type DocumentExtractor interface {
	ExtractText(ctx context.Context, r io.Reader) (string, error)
}

// Normalizer produces the canonical payload for each file format: raw
// base64 bytes for images and PDFs, extracted plain text for spreadsheets
// and word documents.
type Normalizer struct {
	sheets SpreadsheetExtractor
	docs   DocumentExtractor
	logger *slog.Logger
}

// NewNormalizer creates a normalizer. Nil extractors make their format fail
// with ErrFileRead rather than panicking.
func NewNormalizer(sheets SpreadsheetExtractor, docs DocumentExtractor, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{sheets: sheets, docs: docs, logger: logger}
}

// Normalize reads the file and produces an IngestedDocument for the given
// format. On any read or extraction failure no partial document is produced.
func (n *Normalizer) Normalize(ctx context.Context, fileName string, format constants.FileFormat, r io.Reader) (entity.IngestedDocument, error) {
	switch format {
	case constants.IMAGE, constants.PDF:
		b, err := io.ReadAll(r)
		if err != nil {
			return entity.IngestedDocument{}, fmt.Errorf("%w: read %s: %v", common.ErrFileRead, fileName, err)
		}
		mt := constants.MIMEByExt(filepath.Ext(fileName))
		if format == constants.PDF && mt == "application/octet-stream" {
			mt = "application/pdf"
		}
		n.logger.Info("normalize.binary.ok", "file", fileName, "format", format, "bytes", len(b), "mime", mt)
		return entity.NewBinaryDocument(fileName, format, base64.StdEncoding.EncodeToString(b), mt), nil

	case constants.SPREADSHEET:
		if n.sheets == nil {
			return entity.IngestedDocument{}, fmt.Errorf("%w: no spreadsheet extractor configured", common.ErrFileRead)
		}
		text, err := n.sheets.ExtractText(ctx, r)
		if err != nil {
			return entity.IngestedDocument{}, fmt.Errorf("%w: spreadsheet %s: %v", common.ErrFileRead, fileName, err)
		}
		n.logger.Info("normalize.text.ok", "file", fileName, "format", format, "text_len", len(text))
		return entity.NewTextDocument(fileName, format, text), nil

	case constants.WORDDOC:
		if n.docs == nil {
			return entity.IngestedDocument{}, fmt.Errorf("%w: no document extractor configured", common.ErrFileRead)
		}
		text, err := n.docs.ExtractText(ctx, r)
		if err != nil {
			return entity.IngestedDocument{}, fmt.Errorf("%w: document %s: %v", common.ErrFileRead, fileName, err)
		}
		n.logger.Info("normalize.text.ok", "file", fileName, "format", format, "text_len", len(text))
		return entity.NewTextDocument(fileName, format, text), nil

	default:
		return entity.IngestedDocument{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
	}
}
