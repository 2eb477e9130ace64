package noark

// Identifikator wraps a single identifier value.
type Identifikator struct {
	Identifikatorverdi string `json:"identifikatorverdi,omitempty"`
}

// Ident is a convenience constructor for an Identifikator.
func Ident(value string) *Identifikator {
	return &Identifikator{Identifikatorverdi: value}
}

// Link is a reference to another resource by href.
type Link struct {
	Href string `json:"href,omitempty"`
}

// Links maps a relation name to its link list. Serialized as "_links".
type Links map[string][]Link

// Add appends a link under the given relation.
func (l Links) Add(rel, href string) {
	l[rel] = append(l[rel], Link{Href: href})
}

// Has reports whether the relation contains a link with the exact href.
func (l Links) Has(rel, href string) bool {
	for _, link := range l[rel] {
		if link.Href == href {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the link map.
func (l Links) Clone() Links {
	if l == nil {
		return nil
	}
	out := make(Links, len(l))
	for rel, links := range l {
		cp := make([]Link, len(links))
		copy(cp, links)
		out[rel] = cp
	}
	return out
}

// Klasse is a classification entry on a case. Rekkefolge gives the ordinal
// position (1 = primary, 2 = secondary, 3 = tertiary); the classification
// system reference lives in the "klassifikasjonssystem" link relation.
type Klasse struct {
	KlasseID   string `json:"klasseId,omitempty"`
	Tittel     string `json:"tittel,omitempty"`
	Rekkefolge int    `json:"rekkefolge,omitempty"`
	Links      Links  `json:"_links,omitempty"`
}

// Skjerming holds access-restriction references for a case; the
// "tilgangsrestriksjon" link relation carries the restriction codes.
type Skjerming struct {
	Links Links `json:"_links,omitempty"`
}

// JournalEntry is a registered journal post on a case. Entries are owned by
// their parent case, numbered from 1, and never removed or renumbered.
type JournalEntry struct {
	JournalPostnummer int64  `json:"journalPostnummer,omitempty"`
	JournalAar        int64  `json:"journalAar,omitempty"`
	Tittel            string `json:"tittel,omitempty"`
	OffentligTittel   string `json:"offentligTittel,omitempty"`
	JournalDato       string `json:"journalDato,omitempty"`
	Links             Links  `json:"_links,omitempty"`
}

// Clone returns a deep copy of the journal entry.
func (j JournalEntry) Clone() JournalEntry {
	out := j
	out.Links = j.Links.Clone()
	return out
}

// Case is an archival case folder ("saksmappe"). The identifier has the
// form "{year}/{sequence}". Classification, party and status attributes
// beyond the typed fields are carried as link relations.
type Case struct {
	SystemID          *Identifikator `json:"systemId,omitempty"`
	MappeID           *Identifikator `json:"mappeId,omitempty"`
	Tittel            string         `json:"tittel,omitempty"`
	OffentligTittel   string         `json:"offentligTittel,omitempty"`
	Saksdato          string         `json:"saksdato,omitempty"`
	Saksaar           int64          `json:"saksaar,omitempty"`
	Sakssekvensnummer int64          `json:"sakssekvensnummer,omitempty"`
	Klasse            []Klasse       `json:"klasse,omitempty"`
	Skjerming         *Skjerming     `json:"skjerming,omitempty"`
	Journalpost       []JournalEntry `json:"journalpost,omitempty"`
	Links             Links          `json:"_links,omitempty"`
}

// ID returns the case identifier (mappeId), or "" when unset.
func (c *Case) ID() string {
	if c.MappeID == nil {
		return ""
	}
	return c.MappeID.Identifikatorverdi
}

// AddSelf adds a self link unless one with the same href already exists.
func (c *Case) AddSelf(href string) {
	if c.Links == nil {
		c.Links = Links{}
	}
	if !c.Links.Has("self", href) {
		c.Links.Add("self", href)
	}
}

// Clone returns a deep copy of the case, including journal entries.
func (c *Case) Clone() Case {
	out := *c
	if c.SystemID != nil {
		id := *c.SystemID
		out.SystemID = &id
	}
	if c.MappeID != nil {
		id := *c.MappeID
		out.MappeID = &id
	}
	if c.Klasse != nil {
		out.Klasse = make([]Klasse, len(c.Klasse))
		for i, k := range c.Klasse {
			k.Links = k.Links.Clone()
			out.Klasse[i] = k
		}
	}
	if c.Skjerming != nil {
		out.Skjerming = &Skjerming{Links: c.Skjerming.Links.Clone()}
	}
	if c.Journalpost != nil {
		out.Journalpost = make([]JournalEntry, len(c.Journalpost))
		for i, j := range c.Journalpost {
			out.Journalpost[i] = j.Clone()
		}
	}
	out.Links = c.Links.Clone()
	return out
}

// File is an uploaded document file, independent of any case.
type File struct {
	SystemID *Identifikator `json:"systemId,omitempty"`
	Filnavn  string         `json:"filnavn,omitempty"`
	Links    Links          `json:"_links,omitempty"`
}
