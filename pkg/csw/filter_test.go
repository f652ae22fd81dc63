package csw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "vann", "vann"},
		{"percent", "100%", `100\%`},
		{"underscore", "a_b", `a\_b`},
		{"backslash first", `a\%`, `a\\\%`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLiteral(tt.in))
		})
	}
}

func TestFreeTextFilter_SingleToken(t *testing.T) {
	p := FreeTextFilter("  vann ")
	like, ok := p.(*PropertyIsLike)
	require.True(t, ok)
	assert.Equal(t, PropertyAnyText, like.Property)
	assert.Equal(t, "%vann%", like.Pattern)
}

func TestFreeTextFilter_TokensFormOneAnd(t *testing.T) {
	for n, text := range map[int]string{
		2: "vann elv",
		3: "vann\telv  innsjø",
		5: "a b c d e",
	} {
		and, ok := FreeTextFilter(text).(*And)
		require.True(t, ok, text)
		require.Len(t, and.Predicates, n, text)
		for _, p := range and.Predicates {
			like, ok := p.(*PropertyIsLike)
			require.True(t, ok)
			assert.Equal(t, PropertyAnyText, like.Property)
		}
	}
}

func TestFreeTextFilter_EscapesWildcards(t *testing.T) {
	like := FreeTextFilter("50%").(*PropertyIsLike)
	assert.Equal(t, `%50\%%`, like.Pattern)
}

func TestFreeTextFilter_Empty(t *testing.T) {
	like := FreeTextFilter("   ").(*PropertyIsLike)
	assert.Equal(t, WildCard, like.Pattern)
}

func TestOrganisationFilter(t *testing.T) {
	like := OrganisationFilter("Norsk Polarinstitutt").(*PropertyIsLike)
	assert.Equal(t, PropertyOrganisationName, like.Property)
	assert.Equal(t, "%Norsk Polarinstitutt%", like.Pattern)
}

func TestContactPointFilter_SpacesBecomeSingleChar(t *testing.T) {
	like := ContactPointFilter("Ola Nordmann_2").(*PropertyIsLike)
	assert.Equal(t, PropertyResponsiblePartyName, like.Property)
	assert.Equal(t, `%Ola_Nordmann\_2%`, like.Pattern)
}

func TestCombinedFilters(t *testing.T) {
	and := FreeTextAndOrganisationFilter("vann elv", "Kartverket").(*And)
	require.Len(t, and.Predicates, 2)
	assert.Equal(t, &PropertyIsLike{Property: PropertyAnyText, Pattern: "%vann elv%"}, and.Predicates[0])
	assert.Equal(t, &PropertyIsLike{Property: PropertyOrganisationName, Pattern: "%Kartverket%"}, and.Predicates[1])

	and = FreeTextAndContactPointFilter("vann", "Ola Nordmann").(*And)
	require.Len(t, and.Predicates, 2)
	assert.Equal(t, &PropertyIsLike{Property: PropertyResponsiblePartyName, Pattern: "%Ola_Nordmann%"}, and.Predicates[1])
}

func TestAllOf(t *testing.T) {
	a := IdentifierFilter("a")
	b := &BBox{West: 4, South: 57, East: 32, North: 72}

	assert.Nil(t, AllOf())
	assert.Same(t, a, AllOf(nil, a))
	assert.Equal(t, &And{Predicates: []Predicate{a, b}}, AllOf(a, b))
}
