package simple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func TestConstraints_AccessLinkMapping(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		text     string
		wantText string
		wantLink string
	}{
		{
			name:     "no limitations",
			link:     "http://inspire.ec.europa.eu/metadata-codelist/LimitationsOnPublicAccess/noLimitations",
			text:     "whatever the caller wrote",
			wantText: AccessNoRestrictions,
			wantLink: "http://inspire.ec.europa.eu/metadata-codelist/LimitationsOnPublicAccess/noLimitations",
		},
		{
			name:     "https variant",
			link:     "https://inspire.ec.europa.eu/metadata-codelist/LimitationsOnPublicAccess/noLimitations",
			wantText: AccessNoRestrictions,
			wantLink: "https://inspire.ec.europa.eu/metadata-codelist/LimitationsOnPublicAccess/noLimitations",
		},
		{
			name:     "norway digital",
			link:     inspireAccessBase + "INSPIRE_Directive_Article13_1e",
			wantText: AccessNorwayDigitalRestricted,
			wantLink: inspireAccessBase + "INSPIRE_Directive_Article13_1e",
		},
		{
			name:     "known text gets its link",
			text:     AccessRestricted,
			wantText: AccessRestricted,
			wantLink: inspireAccessBase + "INSPIRE_Directive_Article13_1b",
		},
		{
			name:     "unknown link keeps caller text",
			link:     "http://example.org/access",
			text:     "custom",
			wantText: "custom",
			wantLink: "http://example.org/access",
		},
		{
			name:     "unknown text without link",
			text:     "custom",
			wantText: "custom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewDataset()
			m.SetConstraints(&Constraints{AccessConstraints: tt.text, AccessConstraintsLink: tt.link})

			got := m.Constraints()
			require.NotNil(t, got)
			assert.Equal(t, tt.wantText, got.AccessConstraints)
			assert.Equal(t, tt.wantLink, got.AccessConstraintsLink)
		})
	}
}

func TestConstraints_RoundTrip(t *testing.T) {
	in := &Constraints{
		AccessConstraints:             AccessNoRestrictions,
		AccessConstraintsLink:         inspireAccessBase + "noLimitations",
		UseConstraints:                metadata.RestrictionLicense,
		UseConstraintsLicenseLink:     "https://creativecommons.org/licenses/by/4.0/",
		UseConstraintsLicenseLinkText: "Creative Commons BY 4.0 (CC BY 4.0)",
		OtherConstraints:              "Kilde: Kartverket",
		EnglishOtherConstraints:       "Source: Norwegian Mapping Authority",
		SecurityConstraints:           "unclassified",
		SecurityConstraintsNote:       "Ingen merknad",
		UseLimitations:                "Ingen begrensninger",
		EnglishUseLimitations:         "No limitations",
	}

	m := NewDataset()
	m.SetConstraints(in)
	assert.Equal(t, in, m.Constraints())

	// and through XML
	data, err := metadata.Marshal(m.Document())
	require.NoError(t, err)
	doc, err := metadata.Unmarshal(data)
	require.NoError(t, err)
	decoded, err := New(doc)
	require.NoError(t, err)
	assert.Equal(t, in, decoded.Constraints())
}

func TestConstraints_CanonicalOrder(t *testing.T) {
	m := NewDataset()
	m.SetConstraints(&Constraints{
		SecurityConstraints:   "restricted",
		OtherConstraints:      "annet",
		UseConstraints:        metadata.RestrictionLicense,
		AccessConstraintsLink: inspireAccessBase + "noLimitations",
		UseLimitations:        "begrensning",
	})

	cs := m.Document().Identification.Constraints
	require.Len(t, cs, 5)

	_, ok := cs[0].(*metadata.GenericConstraint)
	assert.True(t, ok, "use limitations first")

	access, ok := cs[1].(*metadata.LegalConstraint)
	require.True(t, ok)
	assert.Equal(t, metadata.RestrictionOther, access.AccessConstraints[0].Value)
	assert.Equal(t, metadata.AnchorText{Value: AccessNoRestrictions, Href: inspireAccessBase + "noLimitations"}, access.OtherConstraints[0])

	use, ok := cs[2].(*metadata.LegalConstraint)
	require.True(t, ok)
	assert.Equal(t, metadata.RestrictionLicense, use.UseConstraints[0].Value)

	other, ok := cs[3].(*metadata.LegalConstraint)
	require.True(t, ok)
	assert.Empty(t, other.AccessConstraints)
	assert.Empty(t, other.UseConstraints)

	_, ok = cs[4].(*metadata.SecurityConstraint)
	assert.True(t, ok, "security constraints last")
}

func TestConstraints_MergesForeignLayout(t *testing.T) {
	m := NewDataset()
	m.Document().Identification.Constraints = []metadata.Constraint{
		&metadata.SecurityConstraint{Classification: metadata.NewCode(metadata.ClassificationCode, "confidential")},
		&metadata.LegalConstraint{
			UseLimitations:    []metadata.Text{metadata.PlainText{Value: "begrenset"}},
			AccessConstraints: []metadata.Code{metadata.NewCode(metadata.RestrictionCode, metadata.RestrictionRestricted)},
		},
	}

	got := m.Constraints()
	require.NotNil(t, got)
	assert.Equal(t, "confidential", got.SecurityConstraints)
	assert.Equal(t, metadata.RestrictionRestricted, got.AccessConstraints)
	assert.Equal(t, "begrenset", got.UseLimitations)
}

func TestConstraints_UseConstraintsDefaultToLicense(t *testing.T) {
	m := NewDataset()
	m.SetConstraints(&Constraints{UseConstraintsLicenseLink: "https://data.norge.no/nlod/no/2.0"})

	got := m.Constraints()
	assert.Equal(t, metadata.RestrictionLicense, got.UseConstraints)
	assert.Equal(t, "https://data.norge.no/nlod/no/2.0", got.UseConstraintsLicenseLink)
}

func TestConstraints_Clear(t *testing.T) {
	m := NewDataset()
	m.SetConstraints(&Constraints{UseLimitations: "x"})
	m.SetConstraints(nil)
	assert.Nil(t, m.Constraints())
}

func TestConstraints_CombinedLegalRecord(t *testing.T) {
	nlod := metadata.AnchorText{Value: "Norsk lisens for offentlige data (NLOD) 2.0", Href: "https://data.norge.no/nlod/no/2.0"}
	combined := func(others ...metadata.Text) *metadata.LegalConstraint {
		return &metadata.LegalConstraint{
			AccessConstraints: []metadata.Code{metadata.NewCode(metadata.RestrictionCode, metadata.RestrictionOther)},
			UseConstraints:    []metadata.Code{metadata.NewCode(metadata.RestrictionCode, metadata.RestrictionLicense)},
			OtherConstraints:  others,
		}
	}
	access := metadata.AnchorText{Value: AccessNoRestrictions, Href: inspireAccessBase + "noLimitations"}

	tests := []struct {
		name  string
		legal *metadata.LegalConstraint
		other string
	}{
		{"access then licence", combined(access, nlod), ""},
		{"licence then access", combined(nlod, access), ""},
		{"trailing free text", combined(access, nlod, metadata.PlainText{Value: "Kilde: Kartverket"}), "Kilde: Kartverket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewDataset()
			m.Document().Identification.Constraints = []metadata.Constraint{tt.legal}

			got := m.Constraints()
			require.NotNil(t, got)
			assert.Equal(t, AccessNoRestrictions, got.AccessConstraints)
			assert.Equal(t, inspireAccessBase+"noLimitations", got.AccessConstraintsLink)
			assert.Equal(t, metadata.RestrictionLicense, got.UseConstraints)
			assert.Equal(t, "https://data.norge.no/nlod/no/2.0", got.UseConstraintsLicenseLink)
			assert.Equal(t, nlod.Value, got.UseConstraintsLicenseLinkText)
			assert.Equal(t, tt.other, got.OtherConstraints)

			// rewriting the merged view keeps every part
			m.SetConstraints(got)
			assert.Equal(t, got, m.Constraints())
		})
	}
}
