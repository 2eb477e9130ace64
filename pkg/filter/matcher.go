package filter

import (
	"strings"

	"github.com/arkivsim/arkivsim/pkg/noark"
)

// Matches reports whether the case satisfies every condition. No
// conditions means a vacuous match; an Invalid condition vetoes the whole
// conjunction.
func Matches(c *noark.Case, conditions []Condition) bool {
	for _, condition := range conditions {
		if !matchesCondition(c, condition) {
			return false
		}
	}
	return true
}

func matchesCondition(c *noark.Case, condition Condition) bool {
	eq, ok := condition.(Equals)
	if !ok {
		return false
	}

	field := strings.ToLower(eq.Field)
	value := eq.Value

	switch {
	case field == "tittel":
		return c.Tittel == value
	case field == "arkivdel":
		return linksContain(c.Links["arkivdel"], value)
	case field == "administrativenhet":
		return linksContain(c.Links["administrativEnhet"], value)
	case field == "saksmappetype":
		return linksContain(c.Links["saksmappetype"], value)
	case field == "saksstatus":
		return linksContain(c.Links["saksstatus"], value)
	case field == "tilgangskode":
		if c.Skjerming == nil {
			return false
		}
		return linksContain(c.Skjerming.Links["tilgangsrestriksjon"], value)
	case strings.HasPrefix(field, "klassifikasjon/"):
		return matchesClassification(c.Klasse, field, value)
	default:
		return false
	}
}

// matchesClassification resolves a klassifikasjon/<rank>/<aspect> address:
// the rank selects the classification entry by ordinal position, the
// aspect selects either the classification-system link ("ordning") or the
// class code value ("verdi"). Malformed addresses never match.
func matchesClassification(klassering []noark.Klasse, field, value string) bool {
	parts := strings.Split(field, "/")
	if len(parts) != 3 {
		return false
	}

	var order int
	switch parts[1] {
	case "primar":
		order = 1
	case "sekundar":
		order = 2
	case "tertiar":
		order = 3
	default:
		return false
	}

	var klasse *noark.Klasse
	for i := range klassering {
		if klassering[i].Rekkefolge == order {
			klasse = &klassering[i]
			break
		}
	}
	if klasse == nil {
		return false
	}

	switch parts[2] {
	case "ordning":
		return linksContain(klasse.Links["klassifikasjonssystem"], value)
	case "verdi":
		return klasse.KlasseID == value
	default:
		return false
	}
}

// linksContain reports whether any link matches the value, either by its
// full href or by the final path segment of the href. Both forms are
// accepted so filters may use absolute URIs or bare identifiers.
func linksContain(links []noark.Link, value string) bool {
	for _, link := range links {
		if linkMatches(link, value) {
			return true
		}
	}
	return false
}

func linkMatches(link noark.Link, value string) bool {
	if link.Href == "" {
		return false
	}
	if link.Href == value {
		return true
	}
	trimmed := strings.TrimRight(link.Href, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:] == value
	}
	return trimmed == value
}
