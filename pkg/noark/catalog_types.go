package noark

// CodeValue is a code-list entry ("begrep"): a code with a display name.
// Used by the kodeverk catalog resources (saksstatus, dokumenttype, ...).
type CodeValue struct {
	SystemID *Identifikator `json:"systemId,omitempty"`
	Kode     string         `json:"kode,omitempty"`
	Navn     string         `json:"navn,omitempty"`
	Links    Links          `json:"_links,omitempty"`
}

// Unit is an administrative unit.
type Unit struct {
	SystemID *Identifikator `json:"systemId,omitempty"`
	Navn     string         `json:"navn,omitempty"`
	Links    Links          `json:"_links,omitempty"`
}

// TitledResource is a catalog resource identified by title rather than a
// code, such as arkivdel and klassifikasjonssystem.
type TitledResource struct {
	SystemID *Identifikator `json:"systemId,omitempty"`
	Tittel   string         `json:"tittel,omitempty"`
	Links    Links          `json:"_links,omitempty"`
}

// ArchiveResource links an archive role to a personnel resource.
type ArchiveResource struct {
	SystemID *Identifikator `json:"systemId,omitempty"`
	Links    Links          `json:"_links,omitempty"`
}

// Personnel is a personalressurs record with a username and person link.
type Personnel struct {
	SystemID   *Identifikator `json:"systemId,omitempty"`
	Brukernavn *Identifikator `json:"brukernavn,omitempty"`
	Links      Links          `json:"_links,omitempty"`
}

// PersonName is a structured person name.
type PersonName struct {
	Fornavn   string `json:"fornavn,omitempty"`
	Etternavn string `json:"etternavn,omitempty"`
}

// Person is a person record.
type Person struct {
	Navn  *PersonName `json:"navn,omitempty"`
	Links Links       `json:"_links,omitempty"`
}
