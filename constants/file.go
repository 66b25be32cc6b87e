package constants

import "strings"

// FileFormat is the handling strategy for an uploaded onboarding document.
type FileFormat string

// Stable values (these exact strings appear in logs and API responses).
const (
	IMAGE       FileFormat = "IMAGE"
	PDF         FileFormat = "PDF"
	SPREADSHEET FileFormat = "SPREADSHEET"
	WORDDOC     FileFormat = "WORDDOC"
)

// formatByExt maps a normalized file extension to its format.
var formatByExt = map[string]FileFormat{
	"jpg":  IMAGE,
	"jpeg": IMAGE,
	"png":  IMAGE,
	"webp": IMAGE,
	"pdf":  PDF,
	"xlsx": SPREADSHEET,
	"xls":  SPREADSHEET,
	"docx": WORDDOC,
}

// mimeByExt maps a normalized extension to the MIME type sent with binary payloads.
var mimeByExt = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
	"pdf":  "application/pdf",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat resolves a normalized extension to its format.
func MapExtToFormat(ext string) (FileFormat, bool) {
	f, ok := formatByExt[NormalizeExt(ext)]
	return f, ok
}

// MIMEByExt returns the MIME type for a normalized extension,
// falling back to application/octet-stream.
func MIMEByExt(ext string) string {
	if mt, ok := mimeByExt[NormalizeExt(ext)]; ok {
		return mt
	}
	return "application/octet-stream"
}
