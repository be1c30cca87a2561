// Package ingestion converts raw resume files (pdf, docx, txt) into
// best-effort plain text for the extractor. It owns no semantics beyond
// decoding: the core's extractors are total over empty input, so callers may
// treat any failure here as an empty document.
package ingestion

import (
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textutil"
)

// SupportedExtensions lists the file extensions ExtractText accepts.
var SupportedExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

// ExtractText extracts plain text from a raw file based on its extension.
// The result is cleaned (special characters stripped, whitespace normalized
// per line) but keeps line structure. On failure it returns an empty string
// together with the error; an unrecognized extension yields
// *UnsupportedFormatError.
func ExtractText(content []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(content)
	case ".docx", ".doc":
		return extractDocx(content)
	case ".txt":
		return extractTxt(content)
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
}

// Supported reports whether filename has a recognized resume extension.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

func clean(text string) string {
	return textutil.CleanLines(textutil.StripSpecial(text))
}
