package noark

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCase(t *testing.T) {
	t.Parallel()

	t.Run("full payload", func(t *testing.T) {
		c := ParseCase([]byte(`{
			"tittel": "Byggesak",
			"offentligTittel": "Byggesak",
			"_links": {"arkivdel": [{"href": "/arkiv/noark/arkivdel/ARK-1"}]}
		}`))
		require.NotNil(t, c)
		assert.Equal(t, "Byggesak", c.Tittel)
		assert.True(t, c.Links.Has("arkivdel", "/arkiv/noark/arkivdel/ARK-1"))
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		c := ParseCase([]byte(`{"tittel":"X","helt":"ukjent"}`))
		require.NotNil(t, c)
		assert.Equal(t, "X", c.Tittel)
	})

	t.Run("malformed yields nil", func(t *testing.T) {
		assert.Nil(t, ParseCase([]byte(`{"tittel":`)))
		assert.Nil(t, ParseCase(nil))
		assert.Nil(t, ParseCase([]byte("  ")))
	})
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Byggesak", ExtractTitle([]byte(`{"tittel":"Byggesak","x":1}`)))
	assert.Empty(t, ExtractTitle([]byte(`{"x":1}`)))
	assert.Empty(t, ExtractTitle([]byte(`[1,2]`)))
	assert.Empty(t, ExtractTitle(nil))
}

func TestParseJournalEntry(t *testing.T) {
	t.Parallel()

	t.Run("unwraps first entry", func(t *testing.T) {
		e := ParseJournalEntry([]byte(`{"journalpost":[{"tittel":"Vedtak"},{"tittel":"Annet"}]}`))
		require.NotNil(t, e)
		assert.Equal(t, "Vedtak", e.Tittel)
	})

	t.Run("empty list yields nil", func(t *testing.T) {
		assert.Nil(t, ParseJournalEntry([]byte(`{"journalpost":[]}`)))
		assert.Nil(t, ParseJournalEntry([]byte(`{}`)))
		assert.Nil(t, ParseJournalEntry([]byte(`oops`)))
	})
}

func TestCaseClone(t *testing.T) {
	t.Parallel()

	original := &Case{
		SystemID: Ident("2026/1"),
		MappeID:  Ident("2026/1"),
		Tittel:   "Sak",
		Klasse: []Klasse{
			{KlasseID: "K-1", Rekkefolge: 1, Links: Links{}},
		},
		Skjerming:   &Skjerming{Links: Links{}},
		Journalpost: []JournalEntry{{JournalPostnummer: 1, Links: Links{}}},
		Links:       Links{},
	}
	original.Links.Add("self", "/arkiv/noark/sak/2026/1")

	clone := original.Clone()
	clone.MappeID.Identifikatorverdi = "changed"
	clone.Links.Add("self", "/other")
	clone.Journalpost[0].Tittel = "changed"
	clone.Klasse[0].KlasseID = "changed"
	clone.Skjerming.Links.Add("tilgangsrestriksjon", "/x")

	assert.Equal(t, "2026/1", original.MappeID.Identifikatorverdi)
	assert.Len(t, original.Links["self"], 1)
	assert.Empty(t, original.Journalpost[0].Tittel)
	assert.Equal(t, "K-1", original.Klasse[0].KlasseID)
	assert.Empty(t, original.Skjerming.Links["tilgangsrestriksjon"])
}

func TestAddSelfDeduplicates(t *testing.T) {
	t.Parallel()

	c := &Case{}
	c.AddSelf("/arkiv/noark/sak/2026/1")
	c.AddSelf("/arkiv/noark/sak/2026/1")

	assert.Len(t, c.Links["self"], 1)
}

func TestCollectionEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("wire shape", func(t *testing.T) {
		data, err := json.Marshal(CaseCollection([]Case{{Tittel: "A"}}))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"_embedded": {"_entries": [{"tittel": "A"}]},
			"total_items": 1
		}`, string(data))
	})

	t.Run("empty collection keeps the entries list", func(t *testing.T) {
		data, err := json.Marshal(NewCollection(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"_embedded":{"_entries":[]},"total_items":0}`, string(data))
	})
}
