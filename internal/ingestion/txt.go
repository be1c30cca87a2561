package ingestion

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

func extractTxt(content []byte) (string, error) {
	if utf8.Valid(content) {
		return clean(string(content)), nil
	}
	// Windows-1252 covers the common smart-quote exports and is total: every
	// byte decodes to some rune, so no further fallback encoding is
	// reachable.
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(content)
	if err != nil {
		return clean(string(content)), nil
	}
	return clean(string(decoded)), nil
}
