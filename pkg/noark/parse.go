package noark

import (
	"bytes"
	"encoding/json"
)

// ParseCase decodes a case-create payload. Parsing is best-effort: a
// malformed or empty payload yields nil rather than an error, and the
// caller falls back to defaults.
func ParseCase(data []byte) *Case {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

// ExtractTitle pulls the "tittel" field out of an otherwise unparseable
// payload. Returns "" when the field is absent or the payload is not an
// object.
func ExtractTitle(data []byte) string {
	if len(bytes.TrimSpace(data)) == 0 {
		return ""
	}
	var node map[string]json.RawMessage
	if err := json.Unmarshal(data, &node); err != nil {
		return ""
	}
	var title string
	if err := json.Unmarshal(node["tittel"], &title); err != nil {
		return ""
	}
	return title
}

// journalEntryWrapper matches the journalpost-put payload, which nests the
// entry under a "journalpost" list on the enclosing case fragment.
type journalEntryWrapper struct {
	Journalpost []JournalEntry `json:"journalpost"`
}

// ParseJournalEntry decodes the first journal entry from a journalpost-put
// payload. Best-effort: malformed payloads yield nil.
func ParseJournalEntry(data []byte) *JournalEntry {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var w journalEntryWrapper
	if err := json.Unmarshal(data, &w); err != nil || len(w.Journalpost) == 0 {
		return nil
	}
	entry := w.Journalpost[0]
	return &entry
}
