// Package noark defines the archival resource model served by the
// simulator: cases with their journal entries, document files, and the
// read-only code-list resources exposed through the catalog endpoints.
//
// Resources follow the FINT wire shape: identifiers are wrapped in an
// Identifikator object, relations live in an "_links" map of link lists,
// and collections are serialized as {"_embedded":{"_entries":[...]}}.
package noark
