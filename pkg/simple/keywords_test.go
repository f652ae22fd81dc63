package simple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func TestKeywords_Dedup(t *testing.T) {
	m := NewDataset()
	m.SetKeywords([]Keyword{
		{Keyword: "vann", Type: KeywordTypeTheme},
		{Keyword: "vann", Type: KeywordTypeTheme},
		{Keyword: "vann", Type: KeywordTypePlace},
	})

	got := m.Keywords()
	require.Len(t, got, 2)
	assert.Equal(t, Keyword{Keyword: "vann", Type: KeywordTypeTheme}, got[0])
	assert.Equal(t, Keyword{Keyword: "vann", Type: KeywordTypePlace}, got[1])
}

func TestKeywords_GroupedByTypeAndThesaurus(t *testing.T) {
	m := NewDataset()
	m.SetKeywords([]Keyword{
		{Keyword: "Hydrografi", Thesaurus: ThesaurusGEMETInspire},
		{Keyword: "Oslo", Type: KeywordTypePlace},
		{Keyword: "Elver", Thesaurus: ThesaurusGEMETInspire},
		{Keyword: "fritt"},
	})

	groups := m.Document().Identification.Keywords
	require.Len(t, groups, 3)

	assert.Len(t, groups[0].Keywords, 2, "keywords of the same thesaurus share a group")
	assert.Equal(t, "Hydrografi", metadata.Primary(groups[0].Keywords[0]))
	assert.Equal(t, "Elver", metadata.Primary(groups[0].Keywords[1]))

	assert.Equal(t, "place", groups[1].Type.Value)
	assert.Equal(t, metadata.CodeListURL(metadata.KeywordTypeCode), groups[1].Type.List)
	assert.Nil(t, groups[1].Thesaurus)

	assert.True(t, groups[2].Type.IsZero())
	assert.Nil(t, groups[2].Thesaurus)

	assert.Len(t, m.KeywordsByThesaurus(ThesaurusGEMETInspire), 2)
	assert.Len(t, m.KeywordsByThesaurus(""), 2)
}

func TestKeywords_ThesaurusTable(t *testing.T) {
	m := NewDataset()
	m.SetKeywords([]Keyword{
		{Keyword: "Hydrografi", Thesaurus: ThesaurusGEMETInspire},
		{Keyword: "Lokal", Thesaurus: "Min egen tesaurus"},
	})
	groups := m.Document().Identification.Keywords
	require.Len(t, groups, 2)

	known := groups[0].Thesaurus
	require.NotNil(t, known)
	assert.Equal(t, "http://www.eionet.europa.eu/gemet/inspire_themes", metadata.Href(known.Title))
	require.Len(t, known.Dates, 1)
	assert.Equal(t, "2008-06-01", known.Dates[0].Date.Format("2006-01-02"))
	assert.Equal(t, metadata.DateTypePublication, known.Dates[0].Type.Value)

	unknown := groups[1].Thesaurus
	require.NotNil(t, unknown)
	assert.Equal(t, metadata.PlainText{Value: "Min egen tesaurus"}, unknown.Title)
	assert.Empty(t, unknown.Dates)

	for _, k := range m.Keywords() {
		assert.NotEmpty(t, k.Thesaurus)
	}
}

func TestKeywords_BilingualAndLinked(t *testing.T) {
	m := NewDataset()
	m.SetKeywords([]Keyword{
		{Keyword: "Vann", EnglishKeyword: "Water", KeywordLink: "http://example.org/water"},
	})

	kw := m.Document().Identification.Keywords[0].Keywords[0]
	assert.Equal(t, metadata.AnchorText{
		Value:      "Vann",
		Href:       "http://example.org/water",
		Alternates: map[string]string{"eng": "Water"},
	}, kw)

	assert.Equal(t, []Keyword{{Keyword: "Vann", EnglishKeyword: "Water", KeywordLink: "http://example.org/water"}}, m.Keywords())
}

func TestKeywords_EnglishMetadata(t *testing.T) {
	m := englishRecord(t)
	m.SetKeywords([]Keyword{{Keyword: "Vann", EnglishKeyword: "Water"}})

	kw := m.Document().Identification.Keywords[0].Keywords[0]
	assert.Equal(t, "Water", metadata.Primary(kw))
	assert.Equal(t, []Keyword{{Keyword: "Vann", EnglishKeyword: "Water"}}, m.Keywords())
}

func TestKeywords_Clear(t *testing.T) {
	m := NewDataset()
	m.SetKeywords([]Keyword{{Keyword: "vann"}})
	m.SetKeywords(nil)
	assert.Nil(t, m.Keywords())
	assert.Nil(t, m.Document().Identification.Keywords)
}
