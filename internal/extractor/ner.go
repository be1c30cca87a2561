package extractor

import (
	prose "github.com/jdkato/prose/v2"
)

// Entity is a named entity found in text.
type Entity struct {
	Text  string
	Label string
}

// EntityTagger runs named-entity recognition over a text. Implementations
// must be safe for concurrent use. A nil tagger disables the NER strategies,
// leaving only the pattern-based fallbacks.
type EntityTagger interface {
	Entities(text string) []Entity
}

// Entity labels produced by the tagger.
const (
	labelPerson   = "PERSON"
	labelGeo      = "GPE"
	labelLocation = "LOC"
)

// proseTagger adapts the prose NLP library to EntityTagger.
type proseTagger struct{}

func (proseTagger) Entities(text string) []Entity {
	doc, err := prose.NewDocument(text)
	if err != nil {
		// NER is a best-effort strategy; on failure the regex fallbacks take over.
		return nil
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out
}

// firstEntity returns the trimmed text of the first entity carrying one of
// the wanted labels, or "".
func firstEntity(entities []Entity, labels ...string) string {
	for _, e := range entities {
		for _, l := range labels {
			if e.Label == l {
				return trimmed(e.Text)
			}
		}
	}
	return ""
}
