package entity

import "github.com/hundredplus/onboard-tracker/constants"

// PayloadKind tells the extraction gateway how a normalized document is carried.
type PayloadKind string

const (
	// PayloadBinary carries base64-encoded bytes plus a MIME type (images, PDFs).
	PayloadBinary PayloadKind = "binary"
	// PayloadText carries plain text produced by a text-extraction capability.
	PayloadText PayloadKind = "text"
)

// IngestedDocument is the transient value describing a file mid-pipeline.
// Exactly one of (Data, MIMEType) or Text is populated, per Payload.
type IngestedDocument struct {
	FileName string
	Format   constants.FileFormat
	Payload  PayloadKind
	Data     string // base64 bytes when Payload == PayloadBinary
	MIMEType string
	Text     string // when Payload == PayloadText
}

// NewBinaryDocument builds a binary-payload document.
func NewBinaryDocument(fileName string, format constants.FileFormat, data, mimeType string) IngestedDocument {
	return IngestedDocument{
		FileName: fileName,
		Format:   format,
		Payload:  PayloadBinary,
		Data:     data,
		MIMEType: mimeType,
	}
}

// NewTextDocument builds a text-payload document.
func NewTextDocument(fileName string, format constants.FileFormat, text string) IngestedDocument {
	return IngestedDocument{
		FileName: fileName,
		Format:   format,
		Payload:  PayloadText,
		Text:     text,
	}
}
