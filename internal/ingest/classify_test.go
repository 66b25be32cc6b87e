package ingest

import (
	"errors"
	"testing"

	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/common"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		fileName string
		want     constants.FileFormat
	}{
		{"photo.jpg", constants.IMAGE},
		{"photo.jpeg", constants.IMAGE},
		{"scan.png", constants.IMAGE},
		{"scan.webp", constants.IMAGE},
		{"form.pdf", constants.PDF},
		{"roster.xlsx", constants.SPREADSHEET},
		{"roster.xls", constants.SPREADSHEET},
		{"resume.docx", constants.WORDDOC},
		{"FORM.PDF", constants.PDF},         // extension matching is case-insensitive
		{"archive.v2.final.jpg", constants.IMAGE}, // only the last extension counts
	}

	for _, tt := range tests {
		got, err := Classify(tt.fileName)
		if err != nil {
			t.Errorf("Classify(%q): unexpected error: %v", tt.fileName, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}

func TestClassify_Unsupported(t *testing.T) {
	for _, fileName := range []string{"x.gif", "x.bmp", "x.txt", "x.doc", "x.csv", "noextension", "x."} {
		_, err := Classify(fileName)
		if err == nil {
			t.Errorf("Classify(%q): expected error", fileName)
			continue
		}
		if !errors.Is(err, common.ErrUnsupportedFormat) {
			t.Errorf("Classify(%q): error = %v, want ErrUnsupportedFormat", fileName, err)
		}
	}
}
