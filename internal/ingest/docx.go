package ingest

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DOCXExtractor renders a .docx file as plain text, paragraph order
// preserved. A docx is a zip container; the body text lives in
// word/document.xml as w:t runs inside w:p paragraphs.
type DOCXExtractor struct{}

func (DOCXExtractor) ExtractText(_ context.Context, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return "", fmt.Errorf("open docx container: %w", err)
	}

	doc, err := zr.Open("word/document.xml")
	if err != nil {
		return "", fmt.Errorf("docx has no word/document.xml: %w", err)
	}
	defer func() {
		_ = doc.Close()
	}()

	dec := xml.NewDecoder(doc)
	var sb strings.Builder
	inRun := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inRun {
				sb.Write(t)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
