package store

import "github.com/arkivsim/arkivsim/pkg/noark"

// ResourceDefinition is one seeded catalog resource: a short name, the
// serving path, and its fixed entries.
type ResourceDefinition struct {
	Name  string
	Path  string
	Items []any
}

func seedCatalog() []ResourceDefinition {
	return []ResourceDefinition{
		{
			Name: "administrativenhet",
			Path: "/arkiv/noark/administrativenhet",
			Items: []any{
				unit("/arkiv/noark/administrativenhet", "adm-1", "Skole og oppvekst"),
				unit("/arkiv/noark/administrativenhet", "adm-2", "Plan og bygg"),
			},
		},
		{
			Name: "klassifikasjonssystem",
			Path: "/arkiv/noark/klassifikasjonssystem",
			Items: []any{
				titled("/arkiv/noark/klassifikasjonssystem", "KSS-1", "Primær klassifikasjon"),
				titled("/arkiv/noark/klassifikasjonssystem", "KSS-2", "Sekundær klassifikasjon"),
			},
		},
		{
			Name: "arkivdel",
			Path: "/arkiv/noark/arkivdel",
			Items: []any{
				titled("/arkiv/noark/arkivdel", "ARK-1", "Saksarkiv"),
				titled("/arkiv/noark/arkivdel", "ARK-2", "Elevarkiv"),
			},
		},
		{
			Name: "arkivressurs",
			Path: "/arkiv/noark/arkivressurs",
			Items: []any{
				archiveResource("AR-1", "PR-100"),
				archiveResource("AR-2", "PR-200"),
			},
		},
		{
			Name: "partrolle",
			Path: "/arkiv/kodeverk/partrolle",
			Items: []any{
				code("/arkiv/kodeverk/partrolle", "PR-1", "SOKER", "Søker"),
				code("/arkiv/kodeverk/partrolle", "PR-2", "MOTTAKER", "Mottaker"),
			},
		},
		{
			Name: "korrespondanseparttype",
			Path: "/arkiv/kodeverk/korrespondanseparttype",
			Items: []any{
				code("/arkiv/kodeverk/korrespondanseparttype", "KPT-1", "AVS", "Avsender"),
				code("/arkiv/kodeverk/korrespondanseparttype", "KPT-2", "MOT", "Mottaker"),
			},
		},
		{
			Name: "saksstatus",
			Path: "/arkiv/kodeverk/saksstatus",
			Items: []any{
				code("/arkiv/kodeverk/saksstatus", "SAK-1", "OPPRETTET", "Opprettet"),
				code("/arkiv/kodeverk/saksstatus", "SAK-2", "AVSLUTTET", "Avsluttet"),
			},
		},
		{
			Name: "skjermingshjemmel",
			Path: "/arkiv/kodeverk/skjermingshjemmel",
			Items: []any{
				code("/arkiv/kodeverk/skjermingshjemmel", "SH-1", "13", "Offl. §13"),
				code("/arkiv/kodeverk/skjermingshjemmel", "SH-2", "23", "Offl. §23"),
			},
		},
		{
			Name: "tilgangsrestriksjon",
			Path: "/arkiv/kodeverk/tilgangsrestriksjon",
			Items: []any{
				code("/arkiv/kodeverk/tilgangsrestriksjon", "TR-1", "U", "Unntatt"),
				code("/arkiv/kodeverk/tilgangsrestriksjon", "TR-2", "B", "Begrenset"),
			},
		},
		{
			Name: "dokumentstatus",
			Path: "/arkiv/kodeverk/dokumentstatus",
			Items: []any{
				code("/arkiv/kodeverk/dokumentstatus", "DS-1", "F", "Ferdigstilt"),
				code("/arkiv/kodeverk/dokumentstatus", "DS-2", "U", "Under arbeid"),
			},
		},
		{
			Name: "dokumenttype",
			Path: "/arkiv/kodeverk/dokumenttype",
			Items: []any{
				code("/arkiv/kodeverk/dokumenttype", "DT-1", "B", "Brev"),
				code("/arkiv/kodeverk/dokumenttype", "DT-2", "N", "Notat"),
			},
		},
		{
			Name: "journalposttype",
			Path: "/arkiv/kodeverk/journalposttype",
			Items: []any{
				code("/arkiv/kodeverk/journalposttype", "JT-1", "I", "Inngående"),
				code("/arkiv/kodeverk/journalposttype", "JT-2", "U", "Utgående"),
			},
		},
		{
			Name: "journalstatus",
			Path: "/arkiv/kodeverk/journalstatus",
			Items: []any{
				code("/arkiv/kodeverk/journalstatus", "JS-1", "F", "Ferdigstilt"),
				code("/arkiv/kodeverk/journalstatus", "JS-2", "J", "Journalført"),
			},
		},
		{
			Name: "variantformat",
			Path: "/arkiv/kodeverk/variantformat",
			Items: []any{
				code("/arkiv/kodeverk/variantformat", "VF-1", "A", "Arkiv"),
				code("/arkiv/kodeverk/variantformat", "VF-2", "P", "Produksjon"),
			},
		},
		{
			Name: "format",
			Path: "/arkiv/kodeverk/format",
			Items: []any{
				code("/arkiv/kodeverk/format", "F-1", "PDF", "PDF"),
				code("/arkiv/kodeverk/format", "F-2", "XML", "XML"),
			},
		},
		{
			Name: "tilgangsgruppe",
			Path: "/arkiv/kodeverk/tilgangsgruppe",
			Items: []any{
				code("/arkiv/kodeverk/tilgangsgruppe", "TG-1", "SENS", "Sentrale"),
				code("/arkiv/kodeverk/tilgangsgruppe", "TG-2", "ALL", "Alle"),
			},
		},
		{
			Name: "saksmappetype",
			Path: "/arkiv/kodeverk/saksmappetype",
			Items: []any{
				code("/arkiv/kodeverk/saksmappetype", "SM-1", "GENERELL", "Generell"),
				code("/arkiv/kodeverk/saksmappetype", "SM-2", "ELEV", "Elevmappe"),
			},
		},
		{
			Name: "tilknyttetregistreringsom",
			Path: "/arkiv/kodeverk/tilknyttetregistreringsom",
			Items: []any{
				code("/arkiv/kodeverk/tilknyttetregistreringsom", "TRO-1", "SAK", "Sak"),
				code("/arkiv/kodeverk/tilknyttetregistreringsom", "TRO-2", "MOTE", "Møte"),
			},
		},
		{
			Name: "personalressurs",
			Path: "/administrasjon/personal/personalressurs",
			Items: []any{
				personnel("PR-100", "ola", "P-100"),
				personnel("PR-200", "kari", "P-200"),
			},
		},
		{
			Name: "person",
			Path: "/administrasjon/personal/person",
			Items: []any{
				person("P-100", "Ola", "Nordmann"),
				person("P-200", "Kari", "Nordmann"),
			},
		},
	}
}

func selfLinks(path, id string) noark.Links {
	l := noark.Links{}
	l.Add("self", path+"/"+id)
	return l
}

func code(path, id, kode, navn string) noark.CodeValue {
	return noark.CodeValue{
		SystemID: noark.Ident(id),
		Kode:     kode,
		Navn:     navn,
		Links:    selfLinks(path, id),
	}
}

func unit(path, id, navn string) noark.Unit {
	return noark.Unit{
		SystemID: noark.Ident(id),
		Navn:     navn,
		Links:    selfLinks(path, id),
	}
}

func titled(path, id, tittel string) noark.TitledResource {
	return noark.TitledResource{
		SystemID: noark.Ident(id),
		Tittel:   tittel,
		Links:    selfLinks(path, id),
	}
}

func archiveResource(id, personnelID string) noark.ArchiveResource {
	links := selfLinks("/arkiv/noark/arkivressurs", id)
	links.Add("personalressurs", "/administrasjon/personal/personalressurs/"+personnelID)
	return noark.ArchiveResource{
		SystemID: noark.Ident(id),
		Links:    links,
	}
}

func personnel(id, username, personID string) noark.Personnel {
	links := selfLinks("/administrasjon/personal/personalressurs", id)
	links.Add("person", "/administrasjon/personal/person/"+personID)
	return noark.Personnel{
		SystemID:   noark.Ident(id),
		Brukernavn: noark.Ident(username),
		Links:      links,
	}
}

func person(id, first, last string) noark.Person {
	return noark.Person{
		Navn:  &noark.PersonName{Fornavn: first, Etternavn: last},
		Links: selfLinks("/administrasjon/personal/person", id),
	}
}
