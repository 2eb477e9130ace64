package noark

// Collection is the FINT collection envelope: entries nested under
// "_embedded" plus a total count.
type Collection struct {
	Embedded   Embedded `json:"_embedded"`
	TotalItems int      `json:"total_items"`
}

// Embedded wraps the entry list of a Collection.
type Embedded struct {
	Entries []any `json:"_entries"`
}

// NewCollection builds a collection envelope around the given entries.
// A nil slice yields an empty (not absent) entry list.
func NewCollection(entries []any) Collection {
	if entries == nil {
		entries = []any{}
	}
	return Collection{
		Embedded:   Embedded{Entries: entries},
		TotalItems: len(entries),
	}
}

// CaseCollection builds a collection envelope around case records.
func CaseCollection(cases []Case) Collection {
	entries := make([]any, len(cases))
	for i := range cases {
		entries[i] = cases[i]
	}
	return NewCollection(entries)
}
