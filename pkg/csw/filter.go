package csw

import "strings"

// Predicate is an OGC filter expression. It is implemented by
// *PropertyIsLike, *PropertyIsEqualTo, *BBox, *And and *Or only.
type Predicate interface {
	isPredicate()
}

// PropertyIsLike matches a property against a pattern using WildCard,
// SingleChar and EscapeChar.
type PropertyIsLike struct {
	Property string
	Pattern  string
}

// PropertyIsEqualTo matches a property against a literal value.
type PropertyIsEqualTo struct {
	Property string
	Literal  string
}

// BBox matches records whose bounding box intersects the given envelope,
// in decimal degrees.
type BBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// And is the conjunction of its predicates.
type And struct {
	Predicates []Predicate
}

// Or is the disjunction of its predicates.
type Or struct {
	Predicates []Predicate
}

func (*PropertyIsLike) isPredicate()    {}
func (*PropertyIsEqualTo) isPredicate() {}
func (*BBox) isPredicate()              {}
func (*And) isPredicate()               {}
func (*Or) isPredicate()                {}

// EscapeLiteral escapes the pattern characters in s so they match literally.
func EscapeLiteral(s string) string {
	s = strings.ReplaceAll(s, EscapeChar, EscapeChar+EscapeChar)
	s = strings.ReplaceAll(s, WildCard, EscapeChar+WildCard)
	return strings.ReplaceAll(s, SingleChar, EscapeChar+SingleChar)
}

// contains returns a pattern matching any value containing the escaped s.
// An empty s matches everything.
func contains(s string) string {
	if s == "" {
		return WildCard
	}
	return WildCard + EscapeLiteral(s) + WildCard
}

// FreeTextFilter matches records containing every whitespace-separated
// token of text in AnyText. A single token gives one PropertyIsLike, several
// tokens an And of one PropertyIsLike per token. Empty text matches all
// records.
func FreeTextFilter(text string) Predicate {
	tokens := strings.Fields(text)
	switch len(tokens) {
	case 0:
		return &PropertyIsLike{Property: PropertyAnyText, Pattern: WildCard}
	case 1:
		return &PropertyIsLike{Property: PropertyAnyText, Pattern: contains(tokens[0])}
	}
	and := &And{}
	for _, tok := range tokens {
		and.Predicates = append(and.Predicates, &PropertyIsLike{Property: PropertyAnyText, Pattern: contains(tok)})
	}
	return and
}

// OrganisationFilter matches records whose organisation name contains name.
func OrganisationFilter(name string) Predicate {
	return &PropertyIsLike{Property: PropertyOrganisationName, Pattern: contains(strings.TrimSpace(name))}
}

// ContactPointFilter matches records whose responsible party name contains
// name. Spaces match any single character, as catalogue releases differ in
// how they tokenise the name.
func ContactPointFilter(name string) Predicate {
	pattern := contains(strings.TrimSpace(name))
	pattern = strings.ReplaceAll(pattern, " ", SingleChar)
	return &PropertyIsLike{Property: PropertyResponsiblePartyName, Pattern: pattern}
}

// FreeTextAndOrganisationFilter matches records containing text in AnyText
// and name in the organisation name.
func FreeTextAndOrganisationFilter(text, name string) Predicate {
	return &And{Predicates: []Predicate{
		&PropertyIsLike{Property: PropertyAnyText, Pattern: contains(strings.TrimSpace(text))},
		OrganisationFilter(name),
	}}
}

// FreeTextAndContactPointFilter matches records containing text in AnyText
// and name in the responsible party name.
func FreeTextAndContactPointFilter(text, name string) Predicate {
	return &And{Predicates: []Predicate{
		&PropertyIsLike{Property: PropertyAnyText, Pattern: contains(strings.TrimSpace(text))},
		ContactPointFilter(name),
	}}
}

// IdentifierFilter matches the record with the given identifier.
func IdentifierFilter(id string) Predicate {
	return &PropertyIsEqualTo{Property: PropertyIdentifier, Literal: id}
}

// AllOf combines predicates with And. A single predicate is returned as is
// and no predicates give nil.
func AllOf(predicates ...Predicate) Predicate {
	var kept []Predicate
	for _, p := range predicates {
		if p != nil {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return &And{Predicates: kept}
	}
}
