package simple

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func englishRecord(t *testing.T) *Metadata {
	t.Helper()
	m, err := New(&metadata.Document{
		Language:       metadata.NewCode(metadata.LanguageCode, metadata.LanguageEnglish),
		HierarchyLevel: metadata.NewCode(metadata.ScopeCode, metadata.HierarchyDataset),
	})
	require.NoError(t, err)
	return m
}

func TestNew_NilDocument(t *testing.T) {
	m, err := New(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrNilDocument)
}

func TestTemplates(t *testing.T) {
	tests := []struct {
		name  string
		m     *Metadata
		level string
		kind  metadata.IdentificationKind
	}{
		{"dataset", NewDataset(), metadata.HierarchyDataset, metadata.DataIdentification},
		{"service", NewService(), metadata.HierarchyService, metadata.ServiceIdentification},
		{"dimension group", NewDimensionGroup(), metadata.HierarchyDimensionGroup, metadata.DataIdentification},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uuid.Parse(tt.m.UUID())
			require.NoError(t, err)
			assert.Equal(t, tt.level, tt.m.HierarchyLevel())
			assert.Equal(t, metadata.LanguageNorwegian, tt.m.MetadataLanguage())
			require.NotNil(t, tt.m.Document().Identification)
			assert.Equal(t, tt.kind, tt.m.Document().Identification.Kind)
			require.NotNil(t, tt.m.DateMetadataUpdated())
		})
	}

	assert.NotEqual(t, NewDataset().UUID(), NewDataset().UUID())
}

func TestHierarchyHelpers(t *testing.T) {
	m := NewDataset()
	assert.True(t, m.IsDataset())
	assert.False(t, m.IsService())
	assert.False(t, m.IsDimensionGroup())

	m.SetHierarchyLevel(metadata.HierarchyService)
	assert.True(t, m.IsService())
	assert.Equal(t, metadata.ServiceIdentification, m.Document().Identification.Kind)
	assert.Equal(t, metadata.CodeListURL(metadata.ScopeCode), m.Document().HierarchyLevel.List)

	m.SetHierarchyLevel(metadata.HierarchySeries)
	assert.False(t, m.IsDataset())
	assert.False(t, m.IsService())
	assert.False(t, m.IsDimensionGroup())
}

func TestScalarProperties_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Metadata, string)
		get  func(*Metadata) string
	}{
		{"Title", (*Metadata).SetTitle, (*Metadata).Title},
		{"EnglishTitle", (*Metadata).SetEnglishTitle, (*Metadata).EnglishTitle},
		{"Abstract", (*Metadata).SetAbstract, (*Metadata).Abstract},
		{"EnglishAbstract", (*Metadata).SetEnglishAbstract, (*Metadata).EnglishAbstract},
		{"Purpose", (*Metadata).SetPurpose, (*Metadata).Purpose},
		{"EnglishPurpose", (*Metadata).SetEnglishPurpose, (*Metadata).EnglishPurpose},
		{"SpecificUsage", (*Metadata).SetSpecificUsage, (*Metadata).SpecificUsage},
		{"EnglishSpecificUsage", (*Metadata).SetEnglishSpecificUsage, (*Metadata).EnglishSpecificUsage},
		{"SupplementalDescription", (*Metadata).SetSupplementalDescription, (*Metadata).SupplementalDescription},
		{"EnglishSupplementalDescription", (*Metadata).SetEnglishSupplementalDescription, (*Metadata).EnglishSupplementalDescription},
		{"Credits", (*Metadata).SetCredits, (*Metadata).Credits},
		{"ProcessHistory", (*Metadata).SetProcessHistory, (*Metadata).ProcessHistory},
		{"EnglishProcessHistory", (*Metadata).SetEnglishProcessHistory, (*Metadata).EnglishProcessHistory},
		{"ExtentDescription", (*Metadata).SetExtentDescription, (*Metadata).ExtentDescription},
		{"ParentIdentifier", (*Metadata).SetParentIdentifier, (*Metadata).ParentIdentifier},
		{"UUID", (*Metadata).SetUUID, (*Metadata).UUID},
		{"Status", (*Metadata).SetStatus, (*Metadata).Status},
		{"MaintenanceFrequency", (*Metadata).SetMaintenanceFrequency, (*Metadata).MaintenanceFrequency},
		{"SpatialRepresentation", (*Metadata).SetSpatialRepresentation, (*Metadata).SpatialRepresentation},
		{"ResourceLanguage", (*Metadata).SetResourceLanguage, (*Metadata).ResourceLanguage},
		{"ProductSpecificationURL", (*Metadata).SetProductSpecificationURL, (*Metadata).ProductSpecificationURL},
		{"ProductSheetURL", (*Metadata).SetProductSheetURL, (*Metadata).ProductSheetURL},
		{"ProductPageURL", (*Metadata).SetProductPageURL, (*Metadata).ProductPageURL},
		{"LegendDescriptionURL", (*Metadata).SetLegendDescriptionURL, (*Metadata).LegendDescriptionURL},
		{"CoverageURL", (*Metadata).SetCoverageURL, (*Metadata).CoverageURL},
		{"CoverageGridURL", (*Metadata).SetCoverageGridURL, (*Metadata).CoverageGridURL},
		{"CoverageCellURL", (*Metadata).SetCoverageCellURL, (*Metadata).CoverageCellURL},
		{"HelpURL", (*Metadata).SetHelpURL, (*Metadata).HelpURL},
	}

	for _, lang := range []string{metadata.LanguageNorwegian, metadata.LanguageEnglish} {
		for _, tt := range tests {
			t.Run(lang+"/"+tt.name, func(t *testing.T) {
				m := NewDataset()
				m.SetMetadataLanguage(lang)
				tt.set(m, "first value")
				assert.Equal(t, "first value", tt.get(m))
				tt.set(m, "second value")
				assert.Equal(t, "second value", tt.get(m))
			})
		}
	}
}

func TestBilingual_NorwegianMetadata(t *testing.T) {
	m := NewDataset()
	m.SetTitle("Vann")
	assert.Equal(t, "Vann", m.Title())
	assert.Equal(t, "", m.EnglishTitle(), "no translation yet")

	m.SetEnglishTitle("Water")
	assert.Equal(t, "Vann", m.Title())
	assert.Equal(t, "Water", m.EnglishTitle())
	assert.Equal(t,
		metadata.BilingualText{Value: "Vann", Alternates: map[string]string{"eng": "Water"}},
		m.Document().Identification.Citation.Title)

	require.Len(t, m.Document().Locales, 1)
	assert.Equal(t, "ENG", m.Document().Locales[0].ID)

	// writing the native value keeps the English translation
	m.SetTitle("Vannforekomster")
	assert.Equal(t, "Water", m.EnglishTitle())
	assert.Len(t, m.Document().Locales, 1)
}

func TestBilingual_EnglishMetadataPreservesEnglishPrimary(t *testing.T) {
	m := englishRecord(t)
	m.SetEnglishTitle("Water")
	assert.Equal(t, metadata.PlainText{Value: "Water"}, m.Document().Identification.Citation.Title)

	// native getter falls back to the primary text
	assert.Equal(t, "Water", m.Title())

	m.SetTitle("Vann")
	assert.Equal(t, "Vann", m.Title())
	assert.Equal(t, "Water", m.EnglishTitle())
	assert.Equal(t,
		metadata.BilingualText{Value: "Water", Alternates: map[string]string{"nor": "Vann"}},
		m.Document().Identification.Citation.Title)

	require.Len(t, m.Document().Locales, 1)
	assert.Equal(t, "NOR", m.Document().Locales[0].ID)
}

func TestBilingual_NeverBothEmptyAfterSet(t *testing.T) {
	m := NewDataset()
	m.SetEnglishAbstract("Only English")
	assert.Equal(t, "Only English", m.EnglishAbstract())

	m2 := englishRecord(t)
	m2.SetAbstract("Bare norsk")
	assert.Equal(t, "Bare norsk", m2.Abstract())
}

func TestBilingual_KeepsOtherAlternates(t *testing.T) {
	m := NewDataset()
	m.Document().Identification.Abstract = metadata.BilingualText{
		Value:      "Sammendrag",
		Alternates: map[string]string{"eng": "Abstract", "sme": "Čoahkkáigeassu"},
	}

	m.SetEnglishAbstract("Summary")
	abstract, ok := m.Document().Identification.Abstract.(metadata.BilingualText)
	require.True(t, ok)
	assert.Equal(t, "Sammendrag", abstract.Value)
	assert.Equal(t, "Summary", abstract.Alternates["eng"])
	assert.Equal(t, "Čoahkkáigeassu", abstract.Alternates["sme"])
}

func TestMissingStructure_ReturnsDefaults(t *testing.T) {
	m, err := New(&metadata.Document{})
	require.NoError(t, err)

	assert.Equal(t, "", m.Title())
	assert.Equal(t, "", m.EnglishTitle())
	assert.Equal(t, "", m.Abstract())
	assert.Equal(t, "", m.ProcessHistory())
	assert.Equal(t, "", m.Status())
	assert.Equal(t, "", m.ServiceType())
	assert.Equal(t, "", m.ProductSheetURL())
	assert.Equal(t, 0, m.ResolutionScale())
	assert.Nil(t, m.Keywords())
	assert.Nil(t, m.TopicCategories())
	assert.Nil(t, m.BoundingBox())
	assert.Nil(t, m.TemporalExtent())
	assert.Nil(t, m.VerticalExtent())
	assert.Nil(t, m.Constraints())
	assert.Nil(t, m.ContactMetadata())
	assert.Nil(t, m.ContactPublisher())
	assert.Nil(t, m.DateCreated())
	assert.Nil(t, m.DatePublished())
	assert.Nil(t, m.DateUpdated())
	assert.Nil(t, m.QualitySpecifications())
	assert.Nil(t, m.DistributionFormats())
	assert.Nil(t, m.DistributionDetails())
	assert.Nil(t, m.Distributions())
	assert.Nil(t, m.ReferenceSystems())
	assert.Nil(t, m.Thumbnails())
	assert.Nil(t, m.ResourceReference())
	assert.Nil(t, m.OperatesOn())
	assert.Nil(t, m.Operations())
	assert.Nil(t, m.ProductSpecificationOther())
}

func TestCodeProperties_WriteCodeListURL(t *testing.T) {
	m := NewDataset()
	m.SetStatus("completed")
	m.SetMaintenanceFrequency("annually")
	m.SetSpatialRepresentation("vector")

	id := m.Document().Identification
	assert.Equal(t, metadata.CodeListURL(metadata.ProgressCode), id.Status.List)
	assert.Equal(t, metadata.CodeListURL(metadata.MaintenanceFrequencyCode), id.MaintenanceFrequency.List)
	assert.Equal(t, metadata.CodeListURL(metadata.SpatialRepresentationCode), id.SpatialRepresentationType.List)

	m.SetStatus("")
	assert.True(t, id.Status.IsZero())
}

func TestDates(t *testing.T) {
	m := NewDataset()
	created := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	published := time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2022, 5, 6, 0, 0, 0, 0, time.UTC)

	m.SetDateCreated(&created)
	m.SetDatePublished(&published)
	m.SetDateUpdated(&updated)

	assert.Equal(t, created, *m.DateCreated())
	assert.Equal(t, published, *m.DatePublished())
	assert.Equal(t, updated, *m.DateUpdated())
	assert.Len(t, m.Document().Identification.Citation.Dates, 3)

	// replacing keeps a single entry per type
	m.SetDateCreated(&updated)
	assert.Equal(t, updated, *m.DateCreated())
	assert.Len(t, m.Document().Identification.Citation.Dates, 3)

	m.SetDateCreated(nil)
	assert.Nil(t, m.DateCreated())
	assert.Equal(t, published, *m.DatePublished())
	assert.Len(t, m.Document().Identification.Citation.Dates, 2)
}

func TestDatasetOnlyAndServiceOnlyProperties(t *testing.T) {
	dataset := NewDataset()
	dataset.SetServiceType("view")
	assert.Equal(t, "", dataset.ServiceType(), "service properties are empty on datasets")

	service := NewService()
	service.SetTopicCategories([]string{"environment"})
	service.SetResolutionScale(1000)
	assert.Nil(t, service.TopicCategories(), "dataset properties are empty on services")
	assert.Equal(t, 0, service.ResolutionScale())
}

func TestResolution(t *testing.T) {
	m := NewDataset()
	m.SetResolutionScale(50000)
	m.SetResolutionDistance(10)
	assert.Equal(t, 50000, m.ResolutionScale())
	assert.Equal(t, 10.0, m.ResolutionDistance())

	m.SetResolutionScale(0)
	m.SetResolutionDistance(0)
	assert.Nil(t, m.Document().Identification.Resolution)
}

func TestTopicCategoriesAndThumbnails(t *testing.T) {
	m := NewDataset()
	m.SetTopicCategories([]string{"inlandWaters", "", "environment"})
	assert.Equal(t, []string{"inlandWaters", "environment"}, m.TopicCategories())

	thumbs := []Thumbnail{{URL: "https://example.org/a.png", Type: "thumbnail", MimeType: "image/png"}}
	m.SetThumbnails(thumbs)
	assert.Equal(t, thumbs, m.Thumbnails())
}

func TestResourceReference(t *testing.T) {
	m := NewDataset()
	m.SetResourceReference(&ResourceReference{Code: "vann", Codespace: "no.geonorge"})
	assert.Equal(t, &ResourceReference{Code: "vann", Codespace: "no.geonorge"}, m.ResourceReference())

	m.SetResourceReference(nil)
	assert.Nil(t, m.ResourceReference())
}

func TestServiceProperties(t *testing.T) {
	m := NewService()
	m.SetServiceType("view")
	m.SetServiceTypeVersion("1.3.0")
	m.SetCouplingType("tight")
	m.SetOperatesOn([]string{"a", "", "b"})
	m.SetOperations([]Operation{{Name: "GetMap", DCP: "WebServices", URL: "https://example.org/wms"}})

	assert.Equal(t, "view", m.ServiceType())
	assert.Equal(t, "1.3.0", m.ServiceTypeVersion())
	assert.Equal(t, "tight", m.CouplingType())
	assert.Equal(t, []string{"a", "b"}, m.OperatesOn())
	assert.Equal(t, []Operation{{Name: "GetMap", DCP: "WebServices", URL: "https://example.org/wms"}}, m.Operations())

	m.Document().Identification.OperatesOn[0].Href = "https://example.org/csw?id=a"
	m.SetOperatesOn([]string{"a"})
	assert.Equal(t, "https://example.org/csw?id=a", m.Document().Identification.OperatesOn[0].Href)
}

func TestFacade_SurvivesXMLRoundTrip(t *testing.T) {
	m := NewDataset()
	m.SetTitle("Vann")
	m.SetEnglishTitle("Water")
	m.SetAbstract("Sammendrag")
	m.SetKeywords([]Keyword{
		{Keyword: "vann", EnglishKeyword: "water"},
		{Keyword: "Hydrografi", Type: KeywordTypeTheme, Thesaurus: ThesaurusGEMETInspire, KeywordLink: "http://inspire.ec.europa.eu/theme/hy"},
	})
	m.SetBoundingBox(&BoundingBox{West: 4.5, East: 31.2, South: 57.9, North: 71.2})
	m.SetTemporalExtent(&TemporalExtent{From: "2020-01-01", To: "now"})
	m.SetConstraints(&Constraints{AccessConstraintsLink: inspireAccessBase + "noLimitations"})
	m.SetContactPublisher(&Contact{Name: "Kari", Organization: "Kartverket", Email: "post@kartverket.no"})
	m.SetProductSheetURL("https://example.org/sheet")

	data, err := metadata.Marshal(m.Document())
	require.NoError(t, err)
	doc, err := metadata.Unmarshal(data)
	require.NoError(t, err)
	got, err := New(doc)
	require.NoError(t, err)

	assert.Equal(t, m.UUID(), got.UUID())
	assert.Equal(t, "Vann", got.Title())
	assert.Equal(t, "Water", got.EnglishTitle())
	assert.Equal(t, "Sammendrag", got.Abstract())
	assert.Equal(t, m.Keywords(), got.Keywords())
	assert.Equal(t, m.BoundingBox(), got.BoundingBox())
	assert.Equal(t, &TemporalExtent{From: "2020-01-01", To: "now"}, got.TemporalExtent())
	assert.Equal(t, AccessNoRestrictions, got.Constraints().AccessConstraints)
	assert.Equal(t, m.ContactPublisher(), got.ContactPublisher())
	assert.Equal(t, "https://example.org/sheet", got.ProductSheetURL())
	require.NotNil(t, got.DateMetadataUpdated())
	assert.True(t, m.DateMetadataUpdated().Equal(*got.DateMetadataUpdated()))
}
