package simple

import "github.com/sirosfoundation/go-csw/pkg/metadata"

// Keywords returns all keywords of the resource in document order.
func (m *Metadata) Keywords() []Keyword {
	id := m.ident()
	if id == nil {
		return nil
	}
	var out []Keyword
	for _, group := range id.Keywords {
		var thesaurusName string
		if group.Thesaurus != nil {
			thesaurusName = metadata.Primary(group.Thesaurus.Title)
		}
		for _, k := range group.Keywords {
			out = append(out, Keyword{
				Keyword:        m.localized(k),
				EnglishKeyword: m.english(k),
				KeywordLink:    metadata.Href(k),
				Type:           group.Type.Value,
				Thesaurus:      thesaurusName,
			})
		}
	}
	return out
}

// KeywordsByThesaurus returns the keywords drawn from the named thesaurus.
// An empty name selects free keywords.
func (m *Metadata) KeywordsByThesaurus(name string) []Keyword {
	var out []Keyword
	for _, k := range m.Keywords() {
		if k.Thesaurus == name {
			out = append(out, k)
		}
	}
	return out
}

type keywordKey struct {
	keyword   string
	kind      string
	thesaurus string
}

type groupKey struct {
	kind      string
	thesaurus string
}

// SetKeywords replaces all keywords. Keywords are grouped by type and
// thesaurus in first-seen order and duplicates of (keyword, type, thesaurus)
// are dropped.
func (m *Metadata) SetKeywords(keywords []Keyword) {
	seen := make(map[keywordKey]bool)
	groups := make(map[groupKey]*metadata.KeywordGroup)
	var ordered []*metadata.KeywordGroup

	for _, k := range keywords {
		if k.Keyword == "" && k.EnglishKeyword == "" {
			continue
		}
		key := keywordKey{keyword: k.Keyword, kind: k.Type, thesaurus: k.Thesaurus}
		if k.Keyword == "" {
			key.keyword = k.EnglishKeyword
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		gk := groupKey{kind: k.Type, thesaurus: k.Thesaurus}
		group, ok := groups[gk]
		if !ok {
			group = &metadata.KeywordGroup{
				Type:      metadata.NewCode(metadata.KeywordTypeCode, k.Type),
				Thesaurus: thesaurusCitation(k.Thesaurus),
			}
			groups[gk] = group
			ordered = append(ordered, group)
		}

		text := m.bilingual(k.Keyword, k.EnglishKeyword)
		if k.KeywordLink != "" {
			text = metadata.WithHref(text, k.KeywordLink)
		}
		group.Keywords = append(group.Keywords, text)
	}

	if len(ordered) == 0 {
		if id := m.ident(); id != nil {
			id.Keywords = nil
		}
		return
	}
	m.ensureIdent().Keywords = ordered
}

// thesaurusCitation builds the thesaurus citation for a name. Unknown names
// are written as plain titles without date or link.
func thesaurusCitation(name string) *metadata.Citation {
	if name == "" {
		return nil
	}
	th, ok := thesauri[name]
	if !ok {
		return &metadata.Citation{Title: metadata.Plain(name)}
	}
	c := &metadata.Citation{
		Title: metadata.Plain(name),
		Dates: []*metadata.CitationDate{{
			Date: th.date,
			Type: metadata.NewCode(metadata.DateTypeCode, metadata.DateTypePublication),
		}},
	}
	if th.link != "" {
		c.Title = metadata.AnchorText{Value: name, Href: th.link}
	}
	return c
}
