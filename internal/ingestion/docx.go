package ingestion

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParaRe = regexp.MustCompile(`</w:p>`)
	docxTagRe  = regexp.MustCompile(`<[^>]+>`)
)

func extractDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Err: fmt.Errorf("parse document: %w", err)}
	}
	defer doc.Close()

	// GetContent returns the raw document XML. Paragraph closers become
	// newlines so section headers stay on their own lines.
	raw := doc.Editable().GetContent()
	raw = docxParaRe.ReplaceAllString(raw, "\n")
	raw = docxTagRe.ReplaceAllString(raw, "")
	raw = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'").Replace(raw)
	return clean(raw), nil
}
